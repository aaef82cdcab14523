// internal/cliutil/cliutil.go
package cliutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ListInputs returns the regular files in dir whose names end in one of exts,
// in lexicographic order. Matching is case-sensitive.
func ListInputs(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "list input folder")
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if MatchExt(e.Name(), exts) != "" {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// MatchExt returns the longest element of exts that name ends with, or "".
func MatchExt(name string, exts []string) string {
	best := ""
	for _, x := range exts {
		if x != "" && strings.HasSuffix(name, x) && len(x) > len(best) && len(name) > len(x) {
			best = x
		}
	}
	return best
}

// StdinBase is the base name used for the "-" input.
const StdinBase = "stdin"

// BaseName strips the directory and the recognized extension from path.
// Without a recognized extension, a trailing ".gz" and then the last
// extension are removed. The "-" input is named StdinBase.
func BaseName(path string, exts []string) string {
	if path == "-" {
		return StdinBase
	}
	name := filepath.Base(path)
	if x := MatchExt(name, exts); x != "" {
		return strings.TrimSuffix(name, x)
	}
	name = strings.TrimSuffix(name, ".gz")
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, errors.Wrapf(err, "bad glob %q", a)
			}
			if len(m) == 0 {
				return nil, errors.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}
