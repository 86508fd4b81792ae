// Package voterdirectory owns the registered voter set: eligibility rules,
// identity uniqueness and credential lookup.
package voterdirectory
