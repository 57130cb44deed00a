package lc3

import (
	"os"
	"path/filepath"
	"testing"
)

// writeImage creates a temp object file: base, then the given words, all
// big-endian, and returns its path.
func writeImage(t *testing.T, base uint16, words []uint16) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "image.obj")
	buf := make([]byte, 0, 2*(len(words)+1))
	buf = append(buf, byte(base>>8), byte(base))
	for _, w := range words {
		buf = append(buf, byte(w>>8), byte(w))
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return path
}
