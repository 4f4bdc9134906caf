package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the tide.yaml configuration.
type Config struct {
	// Package is the Go package name for the generated file.
	Package string `yaml:"package,omitempty"`
	// Output is the generated file path, relative to the project root.
	Output string `yaml:"output,omitempty"`
	// Stores declares the stores to generate accessors for.
	Stores []StoreConfig `yaml:"stores"`
}

// StoreConfig declares one named store.
type StoreConfig struct {
	// Name is the registry name of the store.
	Name string `yaml:"name"`
	// State is the Go type expression of the store's state,
	// e.g. "CounterState" or "model.CounterState".
	State string `yaml:"state"`
	// Import is the import path providing the state type, when it
	// lives outside the generated file's package.
	Import string `yaml:"import,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Package    string
	Output     string
	Stores     []StoreConfig
}

// LoadOptional reads tide.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "tide.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read tide.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tide.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads tide.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	pkg := strings.TrimSpace(cfg.Package)
	if pkg == "" {
		pkg = defaultPackage(modulePath, dir)
	}
	if err := validateIdentifier("package", pkg); err != nil {
		return nil, err
	}

	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = "tide_gen.go"
	}

	seen := make(map[string]bool, len(cfg.Stores))
	for _, sc := range cfg.Stores {
		if err := validateIdentifier("store name", sc.Name); err != nil {
			return nil, err
		}
		if strings.TrimSpace(sc.State) == "" {
			return nil, fmt.Errorf("store %q has no state type", sc.Name)
		}
		if seen[sc.Name] {
			return nil, fmt.Errorf("store %q declared twice", sc.Name)
		}
		seen[sc.Name] = true
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Package:    pkg,
		Output:     output,
		Stores:     cfg.Stores,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultPackage derives a package name from the last module path
// segment, falling back to the directory name.
func defaultPackage(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}

	var out []rune
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	if len(out) == 0 || out[0] >= '0' && out[0] <= '9' {
		return "state"
	}
	return string(out)
}

func validateIdentifier(what, name string) error {
	if name == "" {
		return fmt.Errorf("%s must not be empty", what)
	}
	for i, r := range name {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("%s %q cannot start with a digit", what, name)
			}
		default:
			return fmt.Errorf("%s %q contains invalid character %q", what, name, r)
		}
	}
	return nil
}
