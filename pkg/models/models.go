package models

import "fmt"

type RangeMode int

const (
	ModeSinglePage RangeMode = iota
	ModePageRange
)

func (m RangeMode) String() string {
	switch m {
	case ModeSinglePage:
		return "single page"
	case ModePageRange:
		return "page range"
	default:
		return fmt.Sprintf("RangeMode(%d)", int(m))
	}
}

// PageRange is a 1-based, inclusive span of page positions. It is never
// validated against a document: an inverted or out-of-bounds range just
// matches no pages.
type PageRange struct {
	Start int
	End   int
}

func SinglePage(page int) PageRange {
	return PageRange{Start: page, End: page}
}

func (r PageRange) Contains(page int) bool {
	return page >= r.Start && page <= r.End
}

func (r PageRange) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("page %d", r.Start)
	}
	return fmt.Sprintf("pages %d-%d", r.Start, r.End)
}

// ExportedPage is one single-page document written to disk by a split.
type ExportedPage struct {
	PageNumber int
	Path       string
	Hash       string
}

// Result is what every command handler reports back to its shell.
type Result struct {
	Success bool
	Message string
	Err     error
	Pages   []ExportedPage
}

func Succeeded(format string, args ...interface{}) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...)}
}

func Failed(err error) Result {
	return Result{Success: false, Message: err.Error(), Err: err}
}
