package pdf

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/kpauljoseph/pagesplit/pkg/models"
)

const OutputFilePrefix = "split_"

// ParsePage parses a page number typed by the user. The text must be a
// plain decimal integer; whitespace anywhere in it is an error.
func ParsePage(text string) (int, error) {
	page, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid page number %q: %w", text, err)
	}
	return page, nil
}

// RangeFromInput builds the range for the selected entry mode. Bounds are
// not checked against each other or against any document.
func RangeFromInput(mode models.RangeMode, pageText, startText, endText string) (models.PageRange, error) {
	switch mode {
	case models.ModeSinglePage:
		page, err := ParsePage(pageText)
		if err != nil {
			return models.PageRange{}, err
		}
		return models.SinglePage(page), nil
	case models.ModePageRange:
		start, err := ParsePage(startText)
		if err != nil {
			return models.PageRange{}, err
		}
		end, err := ParsePage(endText)
		if err != nil {
			return models.PageRange{}, err
		}
		return models.PageRange{Start: start, End: end}, nil
	default:
		return models.PageRange{}, fmt.Errorf("unknown range mode %v", mode)
	}
}

func OutputFileName(page int) string {
	return fmt.Sprintf("%s%d.pdf", OutputFilePrefix, page)
}

func OutputPath(outputDir string, page int) string {
	return filepath.Join(outputDir, OutputFileName(page))
}
