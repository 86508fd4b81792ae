// Package sessionservice issues and verifies stateless voter session tokens.
package sessionservice
