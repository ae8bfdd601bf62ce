// Package testutil defines support code for unit tests.
package testutil

import (
	"os"
	"testing"

	"github.com/tailscale/hujson"
)

// MustReadJSON reads the HuJSON file at path, which may contain comments and
// trailing commas, and returns its contents converted to standard JSON.
func MustReadJSON(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read input: %v", err)
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		t.Fatalf("Standardize %q: %v", path, err)
	}
	return string(std)
}

// Prefixes returns every non-empty proper prefix of s, from shortest to
// longest. Prefixes may split a multi-byte UTF-8 sequence.
func Prefixes(s string) []string {
	var out []string
	for i := 1; i < len(s); i++ {
		out = append(out, s[:i])
	}
	return out
}
