package pdf

import (
	"context"

	"github.com/kpauljoseph/pagesplit/pkg/models"
)

type PDFSplitter interface {
	Split(ctx context.Context, inputPath, outputDir string, pages models.PageRange) ([]models.ExportedPage, error)
	PageCount(inputPath string) (int, error)
}
