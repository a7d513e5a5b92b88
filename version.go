// Package conflict holds build metadata for the conflict CLI.
package conflict

// Version is the current release of the conflict CLI.
const Version = "0.3.0"
