package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/funvibe/ski/internal/config"
	"github.com/funvibe/ski/internal/term"
)

func runRepl(args []string) int {
	fs, opts := newEvalFlags("repl")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	printReplHelp(os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(green(config.ReplPrompt))
		if !scanner.Scan() {
			fmt.Println()
			return 0
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%") {
			if replCommand(line, opts) {
				return 0
			}
			continue
		}
		if err := evaluate(os.Stdout, line, opts); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
	}
}

// replCommand handles a %-command and reports whether the session should
// end.
func replCommand(line string, opts *evalOptions) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "%exit", "%e":
		return true
	case "%trace", "%t":
		opts.trace = !opts.trace
		fmt.Printf("trace: %s\n", onOff(opts.trace))
	case "%steps":
		if len(fields) != 2 {
			fmt.Println(red("usage: %steps N"))
			break
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			fmt.Println(red("usage: %steps N"))
			break
		}
		opts.maxSteps = n
	case "%basis":
		if len(fields) != 2 || term.BasisByName(fields[1]) == nil {
			fmt.Println(red("usage: %basis ski|bckw|full"))
			break
		}
		opts.basisName = fields[1]
	case "%info", "%i":
		fmt.Printf("basis: %s\nsteps: %d\ntrace: %s\n", opts.basisName, opts.maxSteps, onOff(opts.trace))
	default:
		fmt.Println(red(fmt.Sprintf("unknown command: %s", fields[0])))
		printReplHelp(os.Stdout)
	}
	return false
}

func printReplHelp(w io.Writer) {
	fmt.Fprintf(w, "special commands: %%exit %%basis %%steps %%trace %%info\n")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
