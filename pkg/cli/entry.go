package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/funvibe/ski/internal/config"
	"github.com/funvibe/ski/internal/term"
	"github.com/funvibe/ski/pkg/ski"
)

// Run executes the ski command line and returns the process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		usage(os.Stderr)
		return 1
	}
	switch args[0] {
	case "eval":
		return runEval(args[1:])
	case "run":
		return runFile(args[1:])
	case "repl":
		return runRepl(args[1:])
	case "demo":
		return runDemo(args[1:])
	case "help", "-h", "--help":
		usage(os.Stdout)
		return 0
	}
	// A bare expression works like eval: `ski KISS`.
	return runEval(args)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage: ski <command> [flags] [args]

commands:
  eval EXPR     parse and reduce an expression (default command)
  run FILE      evaluate every line of a source file
  repl          interactive session
  demo TARGET   run a rewriting-system demo: a machine .yaml file, or rule54

eval/run/repl flags:
  -n STEPS      reduction step budget, 0 = unbounded (default 10000)
  -basis NAME   combinator basis: ski, bckw or full (default full)
  -trace        print every reduction step`)
}

type evalOptions struct {
	maxSteps  int
	basisName string
	trace     bool
}

func newEvalFlags(name string) (*flag.FlagSet, *evalOptions) {
	opts := &evalOptions{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&opts.maxSteps, "n", config.DefaultMaxSteps, "reduction step budget (0 = unbounded)")
	fs.StringVar(&opts.basisName, "basis", config.DefaultBasisName, "combinator basis: ski, bckw or full")
	fs.BoolVar(&opts.trace, "trace", false, "print every reduction step")
	return fs, opts
}

func runEval(args []string) int {
	fs, opts := newEvalFlags("eval")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	expr := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(expr) == "" {
		fmt.Fprintln(os.Stderr, red("eval: missing expression"))
		return 1
	}
	if err := evaluate(os.Stdout, expr, opts); err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	return 0
}

// evaluate parses, reduces and prints one expression.
func evaluate(out io.Writer, text string, opts *evalOptions) error {
	basis := term.BasisByName(opts.basisName)
	if basis == nil {
		return fmt.Errorf("unknown basis %q (want ski, bckw or full)", opts.basisName)
	}
	t, err := ski.ParseWith(text, basis)
	if err != nil {
		return err
	}

	if opts.trace {
		fmt.Fprintln(out, dim("  0 ")+ski.Render(t))
		steps := 0
		for {
			if opts.maxSteps > 0 && steps >= opts.maxSteps {
				fmt.Fprintln(os.Stderr, yellow(fmt.Sprintf("step budget of %d exhausted; result is not a normal form", steps)))
				break
			}
			next, ok := ski.Step(t)
			if !ok {
				break
			}
			t = next
			steps++
			fmt.Fprintln(out, dim(fmt.Sprintf("%3d ", steps))+ski.Render(t))
		}
		fmt.Fprintln(out, green(ski.Render(t)))
		return nil
	}

	nf, steps, exhausted := ski.Reduce(t, opts.maxSteps)
	if exhausted {
		fmt.Fprintln(os.Stderr, yellow(fmt.Sprintf("step budget of %d exhausted; result is not a normal form", steps)))
	}
	fmt.Fprintln(out, ski.Render(nf))
	return nil
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func runFile(args []string) int {
	fs, opts := newEvalFlags("run")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, red("run: expected exactly one source file"))
		return 1
	}
	path := fs.Arg(0)
	if !isSourceFile(path) {
		fmt.Fprintln(os.Stderr, red(fmt.Sprintf("run: %s is not a source file (want %s)",
			path, strings.Join(config.SourceFileExtensions, ", "))))
		return 1
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}

	code := 0
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := evaluate(os.Stdout, line, opts); err != nil {
			fmt.Fprintln(os.Stderr, red(fmt.Sprintf("%s:%d: %s", path, i+1, err)))
			code = 1
		}
	}
	return code
}
