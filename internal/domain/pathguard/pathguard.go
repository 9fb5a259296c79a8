// Package pathguard decides whether a task may touch a filesystem path.
//
// Two modes exist. ModePrefix reproduces the legacy contract: an absolute
// path passes when its normalized string form starts with the allowed root,
// and a relative path always passes. Relative paths such as
// "../../etc/passwd" are therefore accepted, and "/datastore" passes for the
// root "/data". ModeContained is the hardened alternative: every path is
// resolved (working directory, symlinks) and must sit at or beneath the root.
//
// Check never returns an error. Malformed input is logged and rejected.
package pathguard

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
)

// Mode selects how a Guard evaluates paths.
type Mode string

const (
	// ModePrefix checks absolute paths by string prefix and accepts every
	// relative path.
	ModePrefix Mode = "prefix"

	// ModeContained resolves every path and requires containment under the root.
	ModeContained Mode = "contained"
)

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m == ModePrefix || m == ModeContained
}

// ErrMalformedPath is reported (logged) when a path cannot be interpreted.
var ErrMalformedPath = errors.New("malformed path")

// Guard enforces the AllowedRoot containment rule. It is immutable after
// construction and safe for concurrent use.
type Guard struct {
	root   string
	mode   Mode
	logger *slog.Logger
}

// New creates a Guard for the given root. An unknown mode falls back to
// ModePrefix. If logger is nil, log output is discarded.
func New(root string, mode Mode, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if !mode.IsValid() {
		mode = ModePrefix
	}
	return &Guard{root: root, mode: mode, logger: logger}
}

// Root returns the configured allowed root.
func (g *Guard) Root() string {
	return g.root
}

// Mode returns the evaluation mode.
func (g *Guard) Mode() Mode {
	return g.mode
}

// Check reports whether path may be accessed.
func (g *Guard) Check(path string) bool {
	ok, err := g.evaluate(path)
	if err != nil {
		g.logger.Error("security check failed",
			slog.String("operation", "pathguard.Check"),
			slog.String("path", path),
			slog.String("mode", string(g.mode)),
			slog.Any("error", err),
		)
		return false
	}
	return ok
}

func (g *Guard) evaluate(path string) (bool, error) {
	if strings.ContainsRune(path, 0) {
		return false, fmt.Errorf("%w: contains NUL byte", ErrMalformedPath)
	}

	if g.mode == ModeContained {
		return g.contained(path)
	}

	p := purePosix(path)
	if !strings.HasPrefix(p, "/") {
		return true, nil
	}
	return strings.HasPrefix(p, g.root), nil
}

// purePosix normalizes a path lexically without touching the filesystem:
// repeated separators collapse, "." segments and trailing separators are
// dropped, ".." segments are kept. Exactly two leading slashes survive, as
// POSIX leaves their meaning implementation-defined.
func purePosix(path string) string {
	if path == "" {
		return "."
	}

	anchor := ""
	switch {
	case strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "///"):
		anchor = "//"
	case strings.HasPrefix(path, "/"):
		anchor = "/"
	}

	parts := strings.Split(path, "/")
	kept := parts[:0]
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		kept = append(kept, part)
	}

	joined := strings.Join(kept, "/")
	if anchor == "" && joined == "" {
		return "."
	}
	return anchor + joined
}

// contained resolves path to an absolute, symlink-free form and checks that
// it equals the root or lies beneath it.
func (g *Guard) contained(path string) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("resolving %q: %w", path, err)
	}

	resolved, err := resolveExisting(abs)
	if err != nil {
		return false, err
	}

	root, err := resolveExisting(filepath.Clean(g.root))
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(root, resolved)
	if err != nil {
		return false, nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, nil
	}
	return true, nil
}

// resolveExisting evaluates symlinks on the longest existing ancestor of an
// absolute path and re-appends the segments that do not exist yet.
func resolveExisting(abs string) (string, error) {
	existing := abs
	var rest []string

	for {
		resolved, err := filepath.EvalSymlinks(existing)
		if err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("evaluating symlinks for %q: %w", existing, err)
		}

		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}
}
