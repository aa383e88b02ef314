package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/pagesplit/internal/app"
	"github.com/kpauljoseph/pagesplit/internal/config"
	"github.com/kpauljoseph/pagesplit/internal/pdf"
	"github.com/kpauljoseph/pagesplit/pkg/logger"
	"github.com/kpauljoseph/pagesplit/pkg/utils"
	"github.com/kpauljoseph/pagesplit/pkg/version"
)

func main() {
	configPath := flag.String("config", "pagesplit.yaml", "path to config file (optional)")
	envFile := flag.String("env", "", "path to a .env file with PAGESPLIT_* overrides")
	inputPath := flag.String("in", "", "PDF file to split")
	outputDir := flag.String("out", "", "directory to write split_<N>.pdf files to (overrides config)")
	page := flag.String("page", "", "split a single page")
	start := flag.String("start", "", "first page of the range (selects range mode)")
	end := flag.String("end", "", "last page of the range (selects range mode)")
	listDir := flag.String("list", "", "list PDF files below this directory and exit")
	interactive := flag.Bool("interactive", false, "read commands from stdin instead of flags")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo("pdfsplit"))
		return
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to set up log file: %v\n", err)
		log = logger.New(logger.WithPrefix("[pdfsplit] "))
	}
	defer closeLog()

	log.SetVerbose(*verbose || cfg.Log.Verbose)
	if *debug || cfg.Log.Trace {
		log.SetLevel(logger.LevelTrace)
	}
	log.Debug("Validation mode: %s", cfg.ValidationMode)

	splitter := pdf.NewSplitter(pdf.SplitterConfig{
		ValidationMode: cfg.ValidationMode,
		Logger:         log,
	})
	splitApp := app.NewSplitterApp(splitter, log)

	ctx := context.Background()

	if *listDir != "" {
		pdfs, err := splitApp.Browse(ctx, *listDir)
		if err != nil {
			log.Fatal("Error finding PDFs: %v", err)
		}
		for _, f := range pdfs {
			count, err := splitter.PageCount(f.AbsolutePath)
			if err != nil {
				fmt.Printf("%s\t(unreadable: %v)\n", f.RelativePath, err)
				continue
			}
			fmt.Printf("%s\t%d pages\n", f.RelativePath, count)
		}
		return
	}

	splitApp.InputPath = *inputPath
	splitApp.OutputDir = *outputDir
	if splitApp.OutputDir == "" {
		splitApp.OutputDir = cfg.OutputDir
	}
	if splitApp.OutputDir == "" {
		splitApp.OutputDir = utils.GetDefaultOutputDir()
	}

	if *start != "" || *end != "" {
		splitApp.SetRange(*start, *end)
	} else {
		splitApp.SetPage(*page)
	}

	if *interactive {
		fmt.Println("pdfsplit interactive mode, type 'help' for commands")
		if err := app.SplitterRegistry(splitApp).Serve(ctx, os.Stdin, os.Stdout, "pdfsplit> "); err != nil {
			log.Fatal("Error reading commands: %v", err)
		}
		return
	}

	if splitApp.InputPath == "" {
		fmt.Println("Please provide a PDF file path using -in flag")
		flag.Usage()
		os.Exit(1)
	}

	res := splitApp.SplitPDF(ctx)
	fmt.Println(splitApp.LastLog())
	if !res.Success {
		os.Exit(1)
	}

	for _, page := range res.Pages {
		fmt.Printf("  page %d -> %s (%s)\n", page.PageNumber, page.Path, utils.ShortHash(page.Hash))
	}
	log.Info("- Output directory: %s", splitApp.OutputDir)
}

// setupLogging tees log output to path when one is configured.
func setupLogging(path string) (*logger.Logger, func(), error) {
	noop := func() {}
	if path == "" {
		return logger.New(logger.WithPrefix("[pdfsplit] ")), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, noop, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)
	log := logger.New(
		logger.WithPrefix("[pdfsplit] "),
		logger.WithOutput(multiWriter),
	)

	return log, func() { logFile.Close() }, nil
}
