package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora/v4"
	"github.com/mattn/go-isatty"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"

	"cx/frontend-go/pkg/driver"
	"cx/frontend-go/pkg/parser"
	"cx/frontend-go/pkg/syntax"
)

const cliToolVersion = "cxast 0.0.0-dev"

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return 0
	case "transform":
		return runTransform(args[1:])
	case "build":
		return runBuild(args[1:])
	default:
		fmt.Fprintln(stderr, colorizeError(fmt.Sprintf("unknown command %q", args[0])))
		printUsage()
		return 1
	}
}

type cliFlags struct {
	verbose bool
	strict  bool
	color   bool
	file    string
	rest    []string
}

func parseFlags(args []string, allowTransform bool) (cliFlags, error) {
	var flags cliFlags
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-v" || arg == "--verbose":
			flags.verbose = true
		case allowTransform && arg == "--color":
			flags.color = true
		case allowTransform && arg == "--strict":
			flags.strict = true
		case allowTransform && arg == "--file":
			if i+1 >= len(args) {
				return flags, fmt.Errorf("--file requires a name")
			}
			i++
			flags.file = args[i]
		case allowTransform && strings.HasPrefix(arg, "--file="):
			flags.file = strings.TrimPrefix(arg, "--file=")
		case arg == "--":
			flags.rest = append(flags.rest, args[i+1:]...)
			return flags, nil
		case strings.HasPrefix(arg, "-") && arg != "-":
			return flags, fmt.Errorf("unknown flag %s", arg)
		default:
			flags.rest = append(flags.rest, arg)
		}
	}
	return flags, nil
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(stderr, "warning: unable to create logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

func runTransform(args []string) int {
	flags, err := parseFlags(args, true)
	if err != nil {
		fmt.Fprintln(stderr, colorizeError(err.Error()))
		return 1
	}
	if len(flags.rest) != 1 {
		fmt.Fprintln(stderr, "cxast transform requires exactly one syntax dump (use - for stdin)")
		return 1
	}

	logger := newLogger(flags.verbose)
	defer func() { _ = logger.Sync() }()

	tree, err := loadDump(flags.rest[0])
	if err != nil {
		fmt.Fprintln(stderr, colorizeError(err.Error()))
		return 1
	}

	opts := []parser.Option{parser.WithLogger(logger)}
	if flags.file != "" {
		opts = append(opts, parser.WithFileName(flags.file))
	}
	if flags.strict {
		opts = append(opts, parser.WithStrictAssignment())
	}
	program, err := parser.NewASTBuilder(opts...).Build(tree)
	if err != nil {
		fmt.Fprintln(stderr, colorizeError(err.Error()))
		return 1
	}

	data, err := driver.EncodeProgram(program)
	if err != nil {
		fmt.Fprintln(stderr, colorizeError(err.Error()))
		return 1
	}
	if flags.color {
		data = pretty.Color(data, nil)
	}
	if _, err := stdout.Write(data); err != nil {
		return 1
	}
	return 0
}

func loadDump(path string) (*syntax.Tree, error) {
	if path == "-" {
		return syntax.Decode(os.Stdin)
	}
	return syntax.LoadFile(path)
}

func runBuild(args []string) int {
	flags, err := parseFlags(args, false)
	if err != nil {
		fmt.Fprintln(stderr, colorizeError(err.Error()))
		return 1
	}
	if len(flags.rest) > 1 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.rest[1:], " "))
		return 1
	}
	start := "."
	if len(flags.rest) == 1 {
		start = flags.rest[0]
	}

	manifestPath, err := driver.FindManifest(start)
	if err != nil {
		fmt.Fprintln(stderr, colorizeError(err.Error()))
		return 1
	}
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load manifest: %s\n", colorizeError(err.Error()))
		return 1
	}

	logger := newLogger(flags.verbose)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := driver.Run(ctx, manifest, logger)
	if err != nil {
		fmt.Fprintln(stderr, colorizeError(err.Error()))
		return 1
	}
	for _, result := range results {
		output, relErr := filepath.Rel(manifest.Dir(), result.Output)
		if relErr != nil {
			output = result.Output
		}
		fmt.Fprintf(stdout, "%s -> %s (%d statements, %d nodes)\n",
			result.Source, filepath.ToSlash(output), result.Statements, result.Nodes)
	}
	fmt.Fprintln(stdout, colorizeSuccess(fmt.Sprintf("built %d unit(s) for %s", len(results), manifest.Name)))
	return 0
}

func colorizeError(message string) string {
	if !isTerminal(stderr) {
		return message
	}
	return aurora.Colorize(message, aurora.RedFg|aurora.BrightFg|aurora.BoldFm).String()
}

func colorizeSuccess(message string) string {
	if !isTerminal(stdout) {
		return message
	}
	return aurora.Colorize(message, aurora.GreenFg|aurora.BrightFg).String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printUsage() {
	fmt.Fprint(stdout, `Usage:
  cxast transform [-v] [--strict] [--file NAME] [--color] <dump.yml|->
  cxast build [-v] [dir]
  cxast --version

transform  convert one syntax tree dump into an AST and print it as JSON
build      transform every source listed in the nearest cx.yml
`)
}
