// Package campaignservice runs the balloting lifecycle: the campaign registry,
// the ballot engine that admits votes, and the results publisher that closes
// campaigns and snapshots their tallies. All three share one campaign
// aggregate guarded by a per-campaign lock.
package campaignservice
