// Package scripts discovers operator SQL scripts from the filesystem at
// startup and exposes them as an immutable registry for the admin console.
package scripts

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/courtdesk/basketref/internal/domain/sqlscript"
)

var (
	// ErrDuplicateKey is returned when two script files share a filename stem.
	ErrDuplicateKey = errors.New("duplicate script key")
	// ErrEmptyScript is returned when a discovered file contains no SQL.
	ErrEmptyScript = errors.New("empty script file")
)

// Registry holds the scripts found under the configured directories. The kind
// of each script comes from the directory it lives in: files under the views
// directory are view definitions, files under the reports directory run as
// plain scripts.
type Registry struct {
	byKey map[string]sqlscript.Script
	keys  []string
}

// Load walks both directories for *.sql files. A missing directory is not an
// error; the registry just ends up without that kind of script.
func Load(viewsDir, reportsDir string) (*Registry, error) {
	r := &Registry{byKey: make(map[string]sqlscript.Script)}

	if err := r.loadDir(viewsDir, sqlscript.KindViewDefinition); err != nil {
		return nil, errors.Wrapf(err, "load view definitions from %s", viewsDir)
	}
	if err := r.loadDir(reportsDir, sqlscript.KindScript); err != nil {
		return nil, errors.Wrapf(err, "load report scripts from %s", reportsDir)
	}

	sort.Strings(r.keys)
	return r, nil
}

func (r *Registry) loadDir(dir string, kind sqlscript.Kind) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrap(err, "read directory")
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".sql") {
			continue
		}

		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, exists := r.byKey[key]; exists {
			return errors.Wrapf(ErrDuplicateKey, "%s", key)
		}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return errors.Wrapf(err, "read script %s", entry.Name())
		}

		text := strings.TrimSpace(string(raw))
		if text == "" {
			return errors.Wrapf(ErrEmptyScript, "%s", entry.Name())
		}

		script := sqlscript.Script{Key: key, Kind: kind, SQL: text}
		if kind == sqlscript.KindViewDefinition {
			script.ViewName = key
		}

		r.byKey[key] = script
		r.keys = append(r.keys, key)
	}

	return nil
}

func (r *Registry) List() []sqlscript.Script {
	out := make([]sqlscript.Script, 0, len(r.keys))
	for _, key := range r.keys {
		out = append(out, r.byKey[key])
	}
	return out
}

func (r *Registry) Get(key string) (sqlscript.Script, bool) {
	script, ok := r.byKey[key]
	return script, ok
}
