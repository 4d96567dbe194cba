// Package constants defines shared application constants.
package constants

const (
	// DefaultListLimit is the default page size for ticket and run listings.
	DefaultListLimit = 100

	// MaxListLimit caps a single listing request.
	MaxListLimit = 1000

	// AnalyzeBatchLimit bounds how many of the most recent tickets an
	// analyze request without explicit ticket ids will cover.
	AnalyzeBatchLimit = 1000
)
