package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tidwall/pretty"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/parser"
	"cx/frontend-go/pkg/syntax"
)

// OutputSuffix is appended to a unit's path, minus its extension, to name the
// AST file written for it.
const OutputSuffix = ".ast.json"

// Result describes one transformed unit.
type Result struct {
	// Source is the unit's path relative to the manifest.
	Source string
	// Output is the absolute path of the written AST file.
	Output     string
	Statements int
	Nodes      int
}

// Run transforms every source listed in the manifest and writes one AST file
// per unit under the manifest's output directory. Units run concurrently,
// each with its own builder. The first failure cancels the remaining units
// and is returned; on success results follow source order.
func Run(ctx context.Context, m *Manifest, logger *zap.Logger) ([]Result, error) {
	if m == nil {
		return nil, fmt.Errorf("driver: nil manifest")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sources, err := m.ResolveSources()
	if err != nil {
		return nil, err
	}
	outputs, err := outputPaths(m, sources)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(m.Output, 0o755); err != nil {
		return nil, fmt.Errorf("driver: create output directory: %w", err)
	}

	workers := m.Options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := transformUnit(m, source, outputs[i], logger)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("build failed", zap.String("manifest", m.Path), zap.Error(err))
		return nil, err
	}

	logger.Info("build complete",
		zap.String("name", m.Name),
		zap.Int("units", len(results)),
		zap.String("output", m.Output),
	)
	return results, nil
}

// ErrOutputConflict is returned when two sources would write the same AST
// file, or a source would write outside the output directory.
var ErrOutputConflict = errors.New("driver: conflicting output path")

// OutputPath returns where the AST for a manifest-relative source is written.
func (m *Manifest) OutputPath(source string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimSuffix(source, path.Ext(source)) + OutputSuffix))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s escapes %s", ErrOutputConflict, source, m.Output)
	}
	return filepath.Join(m.Output, rel), nil
}

func outputPaths(m *Manifest, sources []string) ([]string, error) {
	outputs := make([]string, len(sources))
	owners := make(map[string]string, len(sources))
	for i, source := range sources {
		output, err := m.OutputPath(source)
		if err != nil {
			return nil, err
		}
		if owner, dup := owners[output]; dup {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrOutputConflict, owner, source, output)
		}
		owners[output] = source
		outputs[i] = output
	}
	return outputs, nil
}

func transformUnit(m *Manifest, source, output string, logger *zap.Logger) (Result, error) {
	unitLogger := logger.With(zap.String("unit", source))

	tree, err := syntax.LoadFile(filepath.Join(m.Dir(), filepath.FromSlash(source)))
	if err != nil {
		return Result{}, fmt.Errorf("driver: %s: %w", source, err)
	}

	opts := []parser.Option{parser.WithLogger(unitLogger)}
	if m.Options.Locations {
		opts = append(opts, parser.WithFileName(source))
	}
	if m.Options.StrictAssignment {
		opts = append(opts, parser.WithStrictAssignment())
	}
	program, err := parser.NewASTBuilder(opts...).Build(tree)
	if err != nil {
		return Result{}, fmt.Errorf("driver: %s: %w", source, err)
	}

	data, err := EncodeProgram(program)
	if err != nil {
		return Result{}, fmt.Errorf("driver: %s: %w", source, err)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return Result{}, fmt.Errorf("driver: %s: %w", source, err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("driver: %s: write output: %w", source, err)
	}

	result := Result{
		Source:     source,
		Output:     output,
		Statements: len(program.Statements),
		Nodes:      ast.Count(program),
	}
	unitLogger.Debug("unit written", zap.String("output", output), zap.Int("nodes", result.Nodes))
	return result, nil
}

// EncodeProgram renders a program as indented JSON.
func EncodeProgram(program *ast.Program) ([]byte, error) {
	data, err := json.Marshal(program)
	if err != nil {
		return nil, fmt.Errorf("encode ast: %w", err)
	}
	return pretty.Pretty(data), nil
}
