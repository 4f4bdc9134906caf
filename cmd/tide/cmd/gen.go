package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/tide/cmd/tide/internal/codegen"
	"github.com/go-drift/tide/cmd/tide/internal/config"
	"github.com/go-drift/tide/pkg/errors"
)

func init() {
	RegisterCommand(genCmd)
}

var genCmd = &Command{
	Name:  "gen",
	Short: "Generate typed store accessors from tide.yaml",
	Long: `Gen reads tide.yaml in the target directory and writes a Go file of
typed accessors for the stores it declares, backed by the default
registry. The module path is resolved from go.mod.

A minimal tide.yaml:

  package: state
  output: state/stores_gen.go
  stores:
    - name: counter
      state: CounterState`,
	Usage: "tide gen [dir]",
	Run:   runGen,
}

func runGen(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	resolved, err := config.Resolve(dir)
	if err != nil {
		return &errors.StateError{Op: "gen", Kind: errors.KindConfig, Err: err}
	}
	if len(resolved.Stores) == 0 {
		fmt.Println("tide.yaml declares no stores; nothing to generate")
		return nil
	}

	src, err := codegen.Generate(resolved)
	if err != nil {
		return &errors.StateError{Op: "gen", Kind: errors.KindGenerate, Err: err}
	}

	out := filepath.Join(dir, resolved.Output)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Wrote %s (%d stores)\n", out, len(resolved.Stores))
	return nil
}
