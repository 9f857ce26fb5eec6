// Package cli implements the signum command line: it runs source through
// the lex/parse/check pipeline and reports each expression's value and
// statically resolved sign class.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/signum/internal/checker"
	"github.com/funvibe/signum/internal/config"
	"github.com/funvibe/signum/internal/lexer"
	"github.com/funvibe/signum/internal/parser"
	"github.com/funvibe/signum/internal/pipeline"
	"github.com/funvibe/signum/pkg/sign"
)

// Run is the process entry point.
func Run() {
	os.Exit(Entry(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Entry runs the CLI against explicit streams and returns the exit code:
// 0 on success, 1 when the input had diagnostics, 2 on usage or I/O errors.
func Entry(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "matrix" {
		printMatrix(stdout)
		return 0
	}

	var (
		evalExpr   string
		configPath string
		trace      bool
		files      []string
	)

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-v", "-version", "--version":
			fmt.Fprintln(stdout, "signum "+config.Version)
			return 0
		case "-h", "-help", "--help":
			printUsage(stdout)
			return 0
		case "-e", "--eval":
			i++
			if i >= len(args) {
				fmt.Fprintln(stderr, "signum: -e requires an expression")
				return 2
			}
			evalExpr = args[i]
		case "-config", "--config":
			i++
			if i >= len(args) {
				fmt.Fprintln(stderr, "signum: -config requires a path")
				return 2
			}
			configPath = args[i]
		case "-trace", "--trace":
			trace = true
		default:
			files = append(files, arg)
		}
	}

	cfg, code := loadConfig(configPath, stderr)
	if code != 0 {
		return code
	}
	if trace {
		cfg.Trace = true
	}

	source, filePath, code := readSource(evalExpr, files, stdin, stderr)
	if code != 0 {
		return code
	}

	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = filePath

	processingPipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&checker.CheckProcessor{Trace: cfg.Trace, TraceWriter: stderr},
	)
	finalContext := processingPipeline.Run(ctx)

	useColor := colorEnabled(cfg.Color)
	if results, ok := finalContext.Results.([]checker.Result); ok {
		for _, r := range results {
			printResult(stdout, r, useColor)
		}
	}

	if len(finalContext.Errors) > 0 {
		for _, err := range finalContext.Errors {
			fmt.Fprintf(stderr, "- %s\n", err.Error())
		}
		return 1
	}
	return 0
}

// isSourceFile checks if a file has a recognized source extension.
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func loadConfig(path string, stderr io.Writer) (config.Config, int) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "signum: %v\n", err)
			return config.Config{}, 2
		}
		return cfg, 0
	}
	if _, err := os.Stat(config.DefaultConfigFile); err == nil {
		cfg, err := config.Load(config.DefaultConfigFile)
		if err != nil {
			fmt.Fprintf(stderr, "signum: %v\n", err)
			return config.Config{}, 2
		}
		return cfg, 0
	}
	return config.Default(), 0
}

func readSource(evalExpr string, files []string, stdin io.Reader, stderr io.Writer) (source, filePath string, code int) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", 0
	case len(files) > 0:
		if !isSourceFile(files[0]) {
			fmt.Fprintf(stderr, "signum: warning: %s has no recognized extension (%s)\n",
				files[0], strings.Join(config.SourceFileExtensions, ", "))
		}
		data, err := os.ReadFile(files[0])
		if err != nil {
			fmt.Fprintf(stderr, "signum: %v\n", err)
			return "", "", 2
		}
		return string(data), files[0], 0
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "signum: %v\n", err)
			return "", "", 2
		}
		return string(data), "<stdin>", 0
	}
}

const (
	ansiReset  = "\x1b[0m"
	ansiDim    = "\x1b[2m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func printResult(w io.Writer, r checker.Result, useColor bool) {
	class := r.Class.String()
	if useColor {
		class = colorClass(r.Class) + class + ansiReset
	}
	line := fmt.Sprintf("%s = %d [%s]", r.Expr, r.Value, class)
	if r.InPlace {
		line += " (in-place)"
	}
	fmt.Fprintln(w, line)
}

func colorClass(c checker.Class) string {
	switch c {
	case checker.ClassPositive:
		return ansiGreen
	case checker.ClassNegative:
		return ansiRed
	case checker.ClassUnsigned:
		return ansiYellow
	default:
		return ansiDim
	}
}

// colorEnabled decides whether to emit ANSI codes. Auto mode follows the
// NO_COLOR convention (https://no-color.org/) and requires stdout to be a
// terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case config.ColorNever:
		return false
	case config.ColorAlways:
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// printMatrix dumps the full resolution table, one row per cell.
func printMatrix(w io.Writer) {
	fmt.Fprintf(w, "%-3s %-9s %-9s %-9s %-11s %s\n", "op", "lhs", "rhs", "result", "check", "in-place")
	for _, op := range sign.Ops() {
		for _, lhs := range []sign.Class{sign.ClassPositive, sign.ClassNegative} {
			for _, rhs := range sign.Classes() {
				res := sign.Resolve(op, lhs, rhs)
				if res.Kind == sign.ResolutionNone {
					fmt.Fprintf(w, "%-3s %-9s %-9s %-9s %-11s %s\n",
						op, lhs, rhs, "none", "", "")
					continue
				}
				inPlace := "no"
				if res.InPlace {
					inPlace = "yes"
				}
				check := ""
				if res.Kind == sign.ResolutionZeroCheck {
					check = "zero-check"
				}
				fmt.Fprintf(w, "%-3s %-9s %-9s %-9s %-11s %s\n",
					op, lhs, rhs, res.Result, check, inPlace)
			}
		}
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `signum - sign-witness expression checker

Usage:
  signum [flags] [file]      check expressions from a file
  signum -e "pos(3) + 4"     check a single expression
  signum matrix              print the operator resolution table
  signum                     read expressions from stdin

Expressions use pos(e) and neg(e) to introduce sign witnesses; bare
integer literals are unsigned operands. One expression per line.

Flags:
  -e <expr>        evaluate the given expression
  -config <path>   load configuration from <path> instead of signum.yaml
  -trace           print one trace line per operator application
  -version         print the version
  -help            show this help
`)
}
