// Package id generates prefixed unique identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Generate returns a new identifier of the form "prefix-<nanoid>", e.g.
// "rs-V1StGXR8_Z5jdHi6B-myT" for a reading session. The random part is a
// 21-character URL-safe NanoID, so the result can appear in routes unescaped.
// Fails only when the system cannot supply secure random bytes.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics on failure. An entropy-starved
// system cannot make progress anyway, so callers on the request path use
// this form.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
