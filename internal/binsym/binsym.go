// Package binsym answers "which shared library defines this symbol" by
// scanning the configured library paths with nm. It is deliberately thin:
// unreadable files and non-ELF entries are skipped, never fatal.
package binsym

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Find returns the shared objects under libPaths that export sym.
func Find(ctx context.Context, sym string, libPaths []string, verbose bool) ([]string, error) {
	if _, err := exec.LookPath("nm"); err != nil {
		return nil, fmt.Errorf("nm not found: %w", err)
	}

	var found []string
	for _, dir := range libPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if verbose {
				log.Printf("skipping library path %s: %v", dir, err)
			}
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.Contains(entry.Name(), ".so") {
				continue
			}
			lib := filepath.Join(dir, entry.Name())
			if defines(ctx, lib, sym, verbose) {
				found = append(found, lib)
			}
			if ctx.Err() != nil {
				return found, ctx.Err()
			}
		}
	}
	return found, nil
}

func defines(ctx context.Context, lib, sym string, verbose bool) bool {
	cmd := exec.CommandContext(ctx, "nm", "-D", "--defined-only", lib)
	output, err := cmd.Output()
	if err != nil {
		if verbose {
			log.Printf("nm failed on %s: %v", lib, err)
		}
		return false
	}
	for _, line := range strings.Split(string(output), "\n") {
		// nm -D lines end in "<type> <name>"
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[len(fields)-1] == sym {
			return true
		}
	}
	return false
}
