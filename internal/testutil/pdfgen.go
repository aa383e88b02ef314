// Package testutil writes small PDF fixtures for tests, so the repository
// does not need to carry binary testdata.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type fontSpec struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type textBlock struct {
	Value string    `json:"value"`
	Pos   []float64 `json:"pos"`
	Font  fontSpec  `json:"font"`
}

type pageContent struct {
	Text []textBlock `json:"text"`
}

type pageSpec struct {
	Content pageContent `json:"content"`
}

type documentSpec struct {
	Paper  string              `json:"paper"`
	Origin string              `json:"origin"`
	Pages  map[string]pageSpec `json:"pages"`
}

// PageLabel is the text drawn on page n of a generated document.
func PageLabel(n int) string {
	return fmt.Sprintf("Page %d", n)
}

// PageDescription is the pdfcpu create description for a portrait US-Letter
// document of pageCount pages, each showing PageLabel(n) in Helvetica.
func PageDescription(pageCount int) ([]byte, error) {
	doc := documentSpec{
		Paper:  "LetterP",
		Origin: "LowerLeft",
		Pages:  make(map[string]pageSpec, pageCount),
	}
	for n := 1; n <= pageCount; n++ {
		doc.Pages[strconv.Itoa(n)] = pageSpec{
			Content: pageContent{
				Text: []textBlock{{
					Value: PageLabel(n),
					Pos:   []float64{72, 700},
					Font:  fontSpec{Name: "Helvetica", Size: 24},
				}},
			},
		}
	}
	return json.Marshal(doc)
}

// WritePDF creates a pageCount page document at path.
func WritePDF(path string, pageCount int) (err error) {
	api.DisableConfigDir()

	desc, err := PageDescription(pageCount)
	if err != nil {
		return fmt.Errorf("failed to describe pages: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if err := api.Create(nil, bytes.NewReader(desc), out, nil); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}
