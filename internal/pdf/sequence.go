package pdf

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pageSequence walks a document as an ordered sequence of single-page
// documents. A page is only serialized when Page is called, and Release
// drops it again, so at most one page is held at a time.
type pageSequence struct {
	doc     *model.Context
	current int
	page    io.Reader
}

func newPageSequence(doc *model.Context) *pageSequence {
	return &pageSequence{doc: doc}
}

func (s *pageSequence) Next() bool {
	s.Release()
	if s.current >= s.doc.PageCount {
		return false
	}
	s.current++
	return true
}

// PageNumber is the 1-based position of the current page.
func (s *pageSequence) PageNumber() int {
	return s.current
}

func (s *pageSequence) Page() (io.Reader, error) {
	if s.page != nil {
		return s.page, nil
	}
	page, err := api.ExtractPage(s.doc, s.current)
	if err != nil {
		return nil, err
	}
	s.page = page
	return page, nil
}

func (s *pageSequence) Release() {
	s.page = nil
}
