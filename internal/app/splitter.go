package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/kpauljoseph/pagesplit/internal/pdf"
	"github.com/kpauljoseph/pagesplit/internal/scanner"
	"github.com/kpauljoseph/pagesplit/pkg/logger"
	"github.com/kpauljoseph/pagesplit/pkg/models"
)

const SplitSuccessMessage = "PDF split successfully."

// SplitterApp holds the splitter form. Fields are plain text exactly as the
// user entered them; nothing is parsed until SplitPDF runs.
type SplitterApp struct {
	InputPath string
	OutputDir string
	Mode      models.RangeMode
	PageText  string
	StartText string
	EndText   string

	// Log gets one line per SplitPDF call.
	Log []string

	splitter pdf.PDFSplitter
	scanner  *scanner.DirectoryScanner
	logger   *logger.Logger
}

func NewSplitterApp(splitter pdf.PDFSplitter, log *logger.Logger) *SplitterApp {
	if log == nil {
		log = logger.Discard()
	}
	return &SplitterApp{
		Mode:     models.ModeSinglePage,
		splitter: splitter,
		scanner:  scanner.New(log),
		logger:   log,
	}
}

func (a *SplitterApp) SetMode(mode models.RangeMode) {
	a.Mode = mode
}

// SetRange switches to range mode with the given bounds.
func (a *SplitterApp) SetRange(start, end string) {
	a.Mode = models.ModePageRange
	a.StartText = start
	a.EndText = end
}

// SetPage switches to single page mode with the given page.
func (a *SplitterApp) SetPage(page string) {
	a.Mode = models.ModeSinglePage
	a.PageText = page
}

// SplitPDF exports the selected pages. Page input is parsed before the
// document is touched, so a typo never writes anything. A range that selects
// no pages still reports success.
func (a *SplitterApp) SplitPDF(ctx context.Context) models.Result {
	pages, err := pdf.RangeFromInput(a.Mode, a.PageText, a.StartText, a.EndText)
	if err != nil {
		return a.fail(err)
	}

	a.logger.Debug("Splitting %s, %s, into %s", a.InputPath, pages, a.OutputDir)
	exported, err := a.splitter.Split(ctx, a.InputPath, a.OutputDir, pages)
	if err != nil {
		return a.fail(err)
	}

	a.logger.Info("Exported %d pages from %s", len(exported), a.InputPath)
	a.appendLog(SplitSuccessMessage)

	res := models.Succeeded(SplitSuccessMessage)
	res.Pages = exported
	return res
}

// Browse lists the PDFs below dir, standing in for a file chooser.
func (a *SplitterApp) Browse(ctx context.Context, dir string) ([]scanner.PDFFile, error) {
	return a.scanner.FindPDFs(ctx, dir)
}

func (a *SplitterApp) LastLog() string {
	if len(a.Log) == 0 {
		return ""
	}
	return a.Log[len(a.Log)-1]
}

func (a *SplitterApp) fail(err error) models.Result {
	a.logger.Error("Split failed: %v", err)
	a.appendLog("Error: " + err.Error())
	return models.Failed(err)
}

func (a *SplitterApp) appendLog(line string) {
	a.Log = append(a.Log, line)
}

func SplitterRegistry(a *SplitterApp) *Registry {
	r := NewRegistry()
	r.Register(Command{
		Name: "input", Usage: "input PATH", Help: "set the PDF to split",
		Run: func(_ context.Context, arg string) models.Result {
			a.InputPath = arg
			return models.Succeeded("Input: %s", arg)
		},
	})
	r.Register(Command{
		Name: "output", Usage: "output DIR", Help: "set the output directory",
		Run: func(_ context.Context, arg string) models.Result {
			a.OutputDir = arg
			return models.Succeeded("Output directory: %s", arg)
		},
	})
	r.Register(Command{
		Name: "page", Usage: "page N", Help: "split a single page",
		Run: func(_ context.Context, arg string) models.Result {
			a.SetPage(arg)
			return models.Succeeded("Mode: %s", a.Mode)
		},
	})
	r.Register(Command{
		Name: "range", Usage: "range START END", Help: "split an inclusive page range",
		Run: func(_ context.Context, arg string) models.Result {
			bounds := strings.Fields(arg)
			if len(bounds) != 2 {
				return models.Failed(fmt.Errorf("range needs START and END, got %q", arg))
			}
			a.SetRange(bounds[0], bounds[1])
			return models.Succeeded("Mode: %s", a.Mode)
		},
	})
	r.Register(Command{
		Name: "split", Usage: "split", Help: "write the selected pages",
		Run: func(ctx context.Context, _ string) models.Result {
			return a.SplitPDF(ctx)
		},
	})
	r.Register(Command{
		Name: "browse", Usage: "browse DIR", Help: "list PDFs below DIR",
		Run: func(ctx context.Context, arg string) models.Result {
			pdfs, err := a.Browse(ctx, arg)
			if err != nil {
				return models.Failed(err)
			}
			var b strings.Builder
			for i, f := range pdfs {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(f.AbsolutePath)
			}
			return models.Succeeded("%s", b.String())
		},
	})
	r.Register(Command{
		Name: "log", Usage: "log", Help: "show the split log",
		Run: func(_ context.Context, _ string) models.Result {
			return models.Succeeded("%s", strings.Join(a.Log, "\n"))
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
