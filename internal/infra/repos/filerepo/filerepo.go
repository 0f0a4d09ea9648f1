// Package filerepo holds the directory plumbing shared by the YAML/JSON
// file repositories.
package filerepo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrOutsideBase = errors.New("path escapes base directory")

// ResolveInside returns the absolute form of path, which must lie inside
// baseDir. A relative path is taken from the working directory when that
// lands inside baseDir, and from baseDir otherwise.
func ResolveInside(baseDir, path string) (string, error) {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	if filepath.IsAbs(path) {
		return inside(base, filepath.Clean(path), path)
	}
	if fromCwd, err := filepath.Abs(path); err == nil {
		if p, err := inside(base, fromCwd, path); err == nil {
			return p, nil
		}
	}
	return inside(base, filepath.Join(base, path), path)
}

func inside(base, p, orig string) (string, error) {
	rel, err := filepath.Rel(base, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideBase, orig)
	}
	return p, nil
}

func IsConfigFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Files lists the config files directly under baseDir in name order.
// A missing directory yields no files.
func Files(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsConfigFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(baseDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Decode reads path as JSON when it ends in .json and as YAML otherwise.
func Decode(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, v)
	} else {
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// StemID is the file name without its extension.
func StemID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
