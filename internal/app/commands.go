package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kpauljoseph/pagesplit/pkg/models"
)

var (
	ErrNoFileSelected = errors.New("no file selected")
	ErrUnknownCommand = errors.New("unknown command")
)

// EditorCommands are the operations behind the editor's File menu.
type EditorCommands interface {
	Open(path string) models.Result
	Save(path string) models.Result
	Exit() models.Result
}

// SplitterCommands are the operations behind the splitter's form.
type SplitterCommands interface {
	SplitPDF(ctx context.Context) models.Result
}

// CommandFunc receives everything after the command name, with the
// separating whitespace removed.
type CommandFunc func(ctx context.Context, arg string) models.Result

type Command struct {
	Name  string
	Usage string
	Help  string
	Run   CommandFunc
}

// Registry maps command names to handlers so a shell can dispatch user
// input without knowing about the application behind it.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name] = cmd
}

func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands returns the registered commands sorted by name.
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}

func (r *Registry) Execute(ctx context.Context, line string) models.Result {
	name, arg := splitCommand(line)
	cmd, ok := r.commands[name]
	if !ok {
		return models.Failed(fmt.Errorf("%w: %q", ErrUnknownCommand, name))
	}
	return cmd.Run(ctx, arg)
}

func (r *Registry) Help() string {
	var b strings.Builder
	for _, cmd := range r.Commands() {
		fmt.Fprintf(&b, "  %-22s %s\n", cmd.Usage, cmd.Help)
	}
	return b.String()
}

// Serve reads one command per line from in and writes each result to out
// until in is exhausted or the context is done. Failed commands don't stop
// the loop.
func (r *Registry) Serve(ctx context.Context, in io.Reader, out io.Writer, prompt string) error {
	lines := bufio.NewScanner(in)
	for {
		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !lines.Scan() {
			return lines.Err()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}

		res := r.Execute(ctx, line)
		if res.Message == "" {
			continue
		}
		if res.Success {
			fmt.Fprintln(out, res.Message)
		} else {
			fmt.Fprintf(out, "Error: %s\n", res.Message)
		}
	}
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexAny(line, " \t")
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimLeft(line[idx:], " \t")
}
