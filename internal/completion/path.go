// Package completion offers filesystem path candidates for the move prompt.
package completion

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// PathCompleter completes directory paths
type PathCompleter struct {
	fs afero.Fs
}

// NewPathCompleter creates a completer over fs, or the OS filesystem when nil
func NewPathCompleter(fs afero.Fs) *PathCompleter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &PathCompleter{fs: fs}
}

// Complete returns the directories matching partial. A partial naming an
// existing directory lists its children; otherwise it lists the siblings of
// the last element whose names start with it, ignoring case.
func (c *PathCompleter) Complete(ctx context.Context, partial string) ([]string, error) {
	if partial == "" {
		return nil, nil
	}
	dir, base := split(c.fs, expandHome(partial))

	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return nil, err
	}

	prefix := strings.ToLower(base)
	var out []string
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() || !strings.HasPrefix(strings.ToLower(e.Name()), prefix) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func split(fs afero.Fs, p string) (dir, base string) {
	if ok, _ := afero.DirExists(fs, p); ok {
		return p, ""
	}
	return filepath.Dir(p), filepath.Base(p)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
