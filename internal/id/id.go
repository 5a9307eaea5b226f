// Package id generates prefixed unique identifiers for short-lived resources
// such as import jobs.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate creates a prefixed NanoID, e.g. "imp-V1StGXR8_Z5jdHi6B-myT".
// NanoIDs are URL-friendly and compact (21 characters vs UUID's 36), which
// suits identifiers that end up in request paths.
//
// Returns an error only when the system cannot supply secure randomness.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}
