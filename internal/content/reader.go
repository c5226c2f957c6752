package content

import (
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Reader serves secondary file reads for window correlation and content
// filtering. A failed read means "no evidence" to the callers, so every
// method degrades instead of forcing error handling up the stack.
type Reader interface {
	// Lines returns the 1-based inclusive range [lo, hi] of the file,
	// clamped to the file's length. ok is false when the file cannot
	// be read.
	Lines(path string, lo, hi int) (lines []string, ok bool)
	// Contains reports whether the file contains sym anywhere. A file
	// that cannot be read contains nothing.
	Contains(path, sym string) bool
}

// cachedReader caches whole files; correlation touches the same file once
// per anchor match and content filtering re-reads it again.
type cachedReader struct {
	cache *lru.Cache[string, []string]
}

// NewReader creates a reader caching up to size files.
func NewReader(size int) Reader {
	if size < 1 {
		size = 1
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, []string](size)
	return &cachedReader{cache: cache}
}

func (r *cachedReader) load(path string) ([]string, bool) {
	if lines, ok := r.cache.Get(path); ok {
		return lines, lines != nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		// Negative entry so a deleted file is not re-stat'd per anchor
		r.cache.Add(path, nil)
		return nil, false
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	r.cache.Add(path, lines)
	return lines, true
}

func (r *cachedReader) Lines(path string, lo, hi int) ([]string, bool) {
	lines, ok := r.load(path)
	if !ok {
		return nil, false
	}
	if lo < 1 {
		lo = 1
	}
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo > hi {
		return nil, true
	}
	return lines[lo-1 : hi], true
}

func (r *cachedReader) Contains(path, sym string) bool {
	lines, ok := r.load(path)
	if !ok {
		return false
	}
	for _, line := range lines {
		if strings.Contains(line, sym) {
			return true
		}
	}
	return false
}
