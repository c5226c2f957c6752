package index

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"idseek/internal/domain"
)

// QueryService runs queries against the external identifier database.
type QueryService interface {
	// Query looks up token in the index, optionally restricted to paths
	// under pathPrefix (a literal prefix or a doublestar glob). A query
	// with no hits returns an empty set, not an error.
	Query(ctx context.Context, token, pathPrefix string) (domain.MatchSet, error)
}

// queryService is the concrete implementation; it shells out to a
// gid-style tool emitting grep-format file:line:text lines.
type queryService struct {
	tool    string
	args    []string
	verbose bool
}

// NewQueryService creates a query service for the given index tool.
func NewQueryService(tool string, args []string, verbose bool) QueryService {
	return &queryService{tool: tool, args: args, verbose: verbose}
}

func (qs *queryService) Query(ctx context.Context, token, pathPrefix string) (domain.MatchSet, error) {
	argv := append(append([]string{}, qs.args...), token)
	cmd := exec.CommandContext(ctx, qs.tool, argv...)

	output, err := cmd.Output()
	if err != nil {
		// grep-family tools exit 1 when nothing matched
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("index query %q failed: %w", token, err)
	}

	matches := ParseMatches(string(output), qs.verbose)
	if pathPrefix == "" {
		return matches, nil
	}

	var kept domain.MatchSet
	for _, m := range matches {
		if pathMatchesPrefix(m.File, pathPrefix) {
			kept = append(kept, m)
		}
	}
	return kept, nil
}

// pathMatchesPrefix accepts either a plain path prefix or a glob pattern.
func pathMatchesPrefix(path, prefix string) bool {
	if strings.ContainsAny(prefix, "*?[{") {
		if ok, err := doublestar.Match(prefix, path); err == nil && ok {
			return true
		}
		ok, err := doublestar.Match(strings.TrimSuffix(prefix, "/")+"/**", path)
		return err == nil && ok
	}
	return strings.HasPrefix(path, prefix)
}

// BuildIndex runs the configured database builder in dir. Output goes to
// the log; the caller only needs success or failure.
func BuildIndex(ctx context.Context, tool, dir string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("index builder not found: %w", err)
	}
	cmd := exec.CommandContext(ctx, tool)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if len(output) > 0 {
		log.Printf("%s: %s", tool, strings.TrimSpace(string(output)))
	}
	if err != nil {
		return fmt.Errorf("index build with %s failed: %w", tool, err)
	}
	return nil
}
