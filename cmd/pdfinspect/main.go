package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/pagesplit/internal/inspect"
	"github.com/kpauljoseph/pagesplit/internal/pdf"
	"github.com/kpauljoseph/pagesplit/pkg/utils"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: pdfinspect source.pdf output-dir")
		os.Exit(1)
	}

	sourcePath := os.Args[1]
	outputDir := os.Args[2]

	source, err := inspect.Open(sourcePath)
	if err != nil {
		fmt.Printf("Error opening source PDF: %v\n", err)
		os.Exit(1)
	}
	defer source.Close()

	fmt.Printf("\nSource: %s (%d pages)\n", sourcePath, source.PageCount())

	mismatches := 0
	found := 0
	for pageNum := 1; pageNum <= source.PageCount(); pageNum++ {
		splitPath := pdf.OutputPath(outputDir, pageNum)
		if _, err := os.Stat(splitPath); err != nil {
			continue
		}
		found++

		fmt.Printf("\nPage %d -> %s\n", pageNum, filepath.Base(splitPath))

		split, err := inspect.Open(splitPath)
		if err != nil {
			fmt.Printf("Error opening %s: %v\n", splitPath, err)
			mismatches++
			continue
		}

		if split.PageCount() != 1 {
			fmt.Printf("Expected a single page, found %d\n", split.PageCount())
			mismatches++
		}

		cmp, err := inspect.ComparePages(source, pageNum, split, 1)
		split.Close()
		if err != nil {
			fmt.Printf("Error comparing page %d: %v\n", pageNum, err)
			mismatches++
			continue
		}

		fmt.Printf("Source dimensions: %.2f x %.2f\n", cmp.SourcePage.Width, cmp.SourcePage.Height)
		fmt.Printf("Split dimensions:  %.2f x %.2f\n", cmp.OtherPage.Width, cmp.OtherPage.Height)
		fmt.Printf("Text content identical: %v\n", cmp.SameText)
		if !cmp.SameText {
			fmt.Printf("\nSource text:\n%s\n", cmp.SourcePage.Text)
			fmt.Printf("\nSplit text:\n%s\n", cmp.OtherPage.Text)
		}

		if hash, err := utils.GenerateFileHash(splitPath); err == nil {
			fmt.Printf("SHA-256: %s\n", hash)
		}

		if !cmp.Matches() {
			mismatches++
		}
	}

	fmt.Printf("\nChecked %d split files, %d mismatches\n", found, mismatches)
	if mismatches > 0 {
		os.Exit(1)
	}
}
