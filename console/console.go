// Package console implements the interactive shell over a store.Store:
// a line-oriented prompt loop with per-field input for anything the
// command line leaves out.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pterm/pterm"

	"rosterdb/config"
	"rosterdb/store"
	"rosterdb/version"
)

// Console reads commands from in and writes everything it has to say to
// out. It never talks to the process's stdio directly, so sessions can
// be scripted.
type Console struct {
	st     *store.Store
	in     io.Reader
	out    io.Writer
	prompt string

	info *pterm.PrefixPrinter
	warn *pterm.PrefixPrinter
	fail *pterm.PrefixPrinter

	// Set by Run for the lifetime of the loop.
	ctx   context.Context
	lines <-chan string
}

// New wires a console to the store. cfg controls the prompt text and
// whether output is colored.
func New(st *store.Store, cfg *config.Config, in io.Reader, out io.Writer) *Console {
	if !cfg.Console.Color {
		pterm.DisableColor()
	}
	return &Console{
		st:     st,
		in:     in,
		out:    out,
		prompt: cfg.Console.Prompt,
		info:   pterm.Info.WithWriter(out),
		warn:   pterm.Warning.WithWriter(out),
		fail:   pterm.Error.WithWriter(out),
	}
}

// Run drives the read-eval-print loop until the input ends, the user
// exits, or ctx is cancelled. It may be called once per Console.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	c.ctx = ctx
	c.lines = lines

	fmt.Fprintln(c.out, version.String())
	fmt.Fprintf(c.out, "Student roster on a %s index. Type 'help' for commands.\n",
		c.st.Students.Kind())

	for {
		line, ok := c.readLine(c.prompt)
		if !ok {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
		if line == "" {
			continue
		}
		args, err := shellwords.Parse(line)
		if err != nil {
			c.fail.Printfln("Cannot parse input: %v", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if !c.dispatch(args) {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
	}
}

// dispatch routes one tokenized command. Returns false to leave the loop.
func (c *Console) dispatch(args []string) bool {
	switch strings.ToLower(args[0]) {
	case "student":
		c.cmdStudent(args[1:])
	case "case":
		c.cmdCase(args[1:])
	case "seed":
		c.cmdSeed()
	case "stats":
		fmt.Fprintln(c.out, renderStats(c.st))
	case "memory":
		fmt.Fprintln(c.out, renderMemory(c.st))
	case "help":
		fmt.Fprint(c.out, helpText)
	case "exit", "quit":
		return false
	default:
		c.fail.Printfln("Unknown command %q. Type 'help'.", args[0])
	}
	return true
}

func (c *Console) cmdSeed() {
	if added := store.Seed(c.st); added > 0 {
		c.info.Printfln("Loaded %d sample records.", added)
	} else {
		c.info.Println("Sample data already present.")
	}
}

// readLine prints label and returns the next input line, trimmed.
// ok is false when the input ended or the context was cancelled.
func (c *Console) readLine(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	select {
	case line, ok := <-c.lines:
		if !ok {
			fmt.Fprintln(c.out)
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-c.ctx.Done():
		fmt.Fprintln(c.out)
		return "", false
	}
}

// argOrPrompt takes the i-th positional argument when present and
// prompts for it otherwise.
func (c *Console) argOrPrompt(args []string, i int, label string) (string, bool) {
	if i < len(args) {
		return strings.TrimSpace(args[i]), true
	}
	return c.readLine(label)
}

const helpText = `Commands:
  student add [id name program cgpa]   Register a student
  student get [id]                     Look up one student
  student update [id]                  Edit fields (blank keeps the value)
  student delete [id]                  Remove a student
  student list                         All students sorted by ID

  case add [id]                        File a conduct case (re-filing replaces it)
  case get [id]                        Look up one case
  case penalty [id level]              Set the penalty level
  case status [id status]              Open or close the case
  case delete [id]                     Remove a case
  case list                            All cases sorted by student ID

  seed                                 Load the sample records
  stats                                Collection counters
  memory                               Estimated index memory
  exit                                 Leave the console
`
