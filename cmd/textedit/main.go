package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kpauljoseph/pagesplit/internal/app"
	"github.com/kpauljoseph/pagesplit/pkg/logger"
	"github.com/kpauljoseph/pagesplit/pkg/version"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo("textedit"))
		return
	}

	// Diagnostics go to stderr so "print" output stays clean on stdout.
	log := logger.New(
		logger.WithPrefix("[textedit] "),
		logger.WithOutput(os.Stderr),
		logger.WithVerbose(*verbose),
	)

	editor := app.NewEditorApp(log, os.Exit)
	registry := app.EditorRegistry(editor)

	if path := flag.Arg(0); path != "" {
		res := editor.Open(path)
		if !res.Success {
			fmt.Printf("Error: %s\n", res.Message)
		}
	}

	fmt.Println(version.GetVersionInfo("textedit") + ", type 'help' for commands")
	if err := registry.Serve(context.Background(), os.Stdin, os.Stdout, "> "); err != nil {
		log.Fatal("Error reading commands: %v", err)
	}
}
