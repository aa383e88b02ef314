// Package inspect reads PDF pages back through MuPDF, independently of the
// library that wrote them, to check what a split actually produced.
package inspect

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

type PageInfo struct {
	Number int
	Width  float64
	Height float64
	Text   string
}

type Comparison struct {
	SourcePage     PageInfo
	OtherPage      PageInfo
	SameDimensions bool
	SameText       bool
}

func (c Comparison) Matches() bool {
	return c.SameDimensions && c.SameText
}

type Document struct {
	path string
	doc  *fitz.Document
}

func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	return &Document{path: path, doc: doc}, nil
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// Page describes the page at 1-based position n.
func (d *Document) Page(n int) (PageInfo, error) {
	//Page numbers are zero indexed in the fitz package.
	if n < 1 || n > d.doc.NumPage() {
		return PageInfo{}, fmt.Errorf("page %d out of range (1-%d)", n, d.doc.NumPage())
	}

	bounds, err := d.doc.Bound(n - 1)
	if err != nil {
		return PageInfo{}, fmt.Errorf("failed to get bounds for page %d: %w", n, err)
	}

	text, err := d.doc.Text(n - 1)
	if err != nil {
		return PageInfo{}, fmt.Errorf("failed to extract text from page %d: %w", n, err)
	}

	return PageInfo{
		Number: n,
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
		Text:   strings.TrimSpace(text),
	}, nil
}

func (d *Document) Close() error {
	return d.doc.Close()
}

func ComparePages(src *Document, srcPage int, other *Document, otherPage int) (Comparison, error) {
	a, err := src.Page(srcPage)
	if err != nil {
		return Comparison{}, err
	}
	b, err := other.Page(otherPage)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		SourcePage:     a,
		OtherPage:      b,
		SameDimensions: a.Width == b.Width && a.Height == b.Height,
		SameText:       a.Text == b.Text,
	}, nil
}
