package app

import (
	"context"
	"os"

	"github.com/kpauljoseph/pagesplit/internal/textbuf"
	"github.com/kpauljoseph/pagesplit/pkg/logger"
	"github.com/kpauljoseph/pagesplit/pkg/models"
)

type ExitFunc func(code int)

type EditorApp struct {
	buffer *textbuf.Buffer
	logger *logger.Logger
	exit   ExitFunc
}

// NewEditorApp wires an empty buffer to log. A nil exit falls back to os.Exit.
func NewEditorApp(log *logger.Logger, exit ExitFunc) *EditorApp {
	if log == nil {
		log = logger.Discard()
	}
	if exit == nil {
		exit = os.Exit
	}
	return &EditorApp{
		buffer: textbuf.New(),
		logger: log,
		exit:   exit,
	}
}

func (a *EditorApp) Buffer() *textbuf.Buffer {
	return a.buffer
}

func (a *EditorApp) Open(path string) models.Result {
	if path == "" {
		return models.Failed(ErrNoFileSelected)
	}
	if err := a.buffer.Load(path); err != nil {
		a.logger.Error("%+v", err)
		return models.Failed(err)
	}
	a.logger.Debug("Loaded %d bytes from %s", a.buffer.Len(), path)
	return models.Succeeded("Opened %s", path)
}

// Save writes to path, or to the file the buffer came from when path is empty.
func (a *EditorApp) Save(path string) models.Result {
	if path == "" {
		path = a.buffer.Path()
	}
	if path == "" {
		return models.Failed(ErrNoFileSelected)
	}
	if err := a.buffer.Save(path); err != nil {
		a.logger.Error("%+v", err)
		return models.Failed(err)
	}
	a.logger.Debug("Wrote %d bytes to %s", a.buffer.Len(), path)
	return models.Succeeded("Saved %s", path)
}

// Exit ends the process straight away. Unsaved changes are dropped.
func (a *EditorApp) Exit() models.Result {
	a.logger.Debug("Exiting (modified=%v)", a.buffer.Modified())
	a.exit(0)
	return models.Succeeded("")
}

func EditorRegistry(a *EditorApp) *Registry {
	r := NewRegistry()
	r.Register(Command{
		Name: "open", Usage: "open PATH", Help: "replace the buffer with the contents of PATH",
		Run: func(_ context.Context, arg string) models.Result { return a.Open(arg) },
	})
	r.Register(Command{
		Name: "save", Usage: "save [PATH]", Help: "write the buffer to PATH (default: current file)",
		Run: func(_ context.Context, arg string) models.Result { return a.Save(arg) },
	})
	r.Register(Command{
		Name: "exit", Usage: "exit", Help: "quit without saving",
		Run: func(_ context.Context, _ string) models.Result { return a.Exit() },
	})
	r.Register(Command{
		Name: "print", Usage: "print", Help: "show the buffer",
		Run: func(_ context.Context, _ string) models.Result {
			return models.Result{Success: true, Message: a.buffer.Text()}
		},
	})
	r.Register(Command{
		Name: "append", Usage: "append TEXT", Help: "add TEXT and a newline to the end of the buffer",
		Run: func(_ context.Context, arg string) models.Result {
			a.buffer.Append(arg + "\n")
			return models.Succeeded("")
		},
	})
	r.Register(Command{
		Name: "clear", Usage: "clear", Help: "empty the buffer",
		Run: func(_ context.Context, _ string) models.Result {
			a.buffer.Clear()
			return models.Succeeded("")
		},
	})
	r.Register(Command{
		Name: "help", Usage: "help", Help: "list commands",
		Run: func(_ context.Context, _ string) models.Result {
			return models.Succeeded("%s", r.Help())
		},
	})
	return r
}
