package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrMissingFile is returned when a required YAML file is absent.
var ErrMissingFile = errors.New("missing file")

var invalidPathCharsRX = regexp.MustCompile(`[:/]+`)

// SanitizeFileName turns a resource name such as storefront/address into a
// file name.
func SanitizeFileName(name string) string {
	return invalidPathCharsRX.ReplaceAllString(name, "-")
}

// EnsureDirPath creates the given directories with user only permissions.
func EnsureDirPath(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create dir %q: %w", dir, err)
		}
	}
	return nil
}

// EnsureFullPath creates the parent directory of a file.
func EnsureFullPath(path string) error {
	return EnsureDirPath(filepath.Dir(path))
}

// SaveYAML writes v to path, creating parent directories as needed.
func SaveYAML(path string, v any) error {
	if err := EnsureFullPath(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}

	return nil
}

// LoadYAML reads path into v.
func LoadYAML(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("unmarshal %q: %w", path, err)
	}

	return nil
}

// MustLoadYAML is LoadYAML for files that must exist. A missing file
// yields ErrMissingFile.
func MustLoadYAML(path string, v any) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissingFile, path)
	}

	return LoadYAML(path, v)
}
