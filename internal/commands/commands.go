package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Prefix marks a console line as a command.
const Prefix = "cmd "

var (
	// ErrUnknownCommand is returned by Execute for a name that was never registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNoCommand is returned by Execute for an empty line.
	ErrNoCommand = errors.New("no command given")
)

// Command is one arena command. Run receives the positional args left after its flags.
type Command struct {
	Name  string
	Usage string
	Flags *flag.FlagSet
	Run   func(args []string) error
}

// Registry maps command names to commands. It is shared by the console and the script runner.
type Registry struct {
	byName map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Command{}}
}

// NewFlagSet returns a FlagSet that reports errors instead of exiting and never prints.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a subcommand. name is the first token of a line (e.g. "gravity").
// run is called after fs.Parse(args[1:]) succeeds. Registering a name twice replaces it.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.byName[name] = &Command{Name: name, Usage: usage, Flags: fs, Run: run}
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for n := range r.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Help returns one "name usage" line per command.
func (r *Registry) Help() []string {
	names := r.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.TrimSpace(n + " " + r.byName[n].Usage)
	}
	return out
}

// Parse splits a console line. ok is false when line lacks the case-sensitive Prefix;
// a bare prefix yields no args and ok true.
func Parse(line string) (args []string, ok bool) {
	rest, found := strings.CutPrefix(line, Prefix)
	if !found {
		return nil, false
	}
	return strings.Fields(rest), true
}

// Execute looks up args[0] and runs it with args[1:].
// Flags are reset to their defaults before every parse so values never leak between runs.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	c, found := r.byName[args[0]]
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	c.Flags.VisitAll(func(f *flag.Flag) { _ = f.Value.Set(f.DefValue) })
	if err := c.Flags.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}
	return c.Run(c.Flags.Args())
}

// RunScript executes one command per line from r. Blank lines and # comments are skipped;
// the "cmd " prefix is optional. It stops at the first failing line.
func (r *Registry) RunScript(src io.Reader) error {
	sc := bufio.NewScanner(src)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		args, isCmd := Parse(text)
		if !isCmd {
			args = strings.Fields(text)
		}
		if err := r.Execute(args); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}
