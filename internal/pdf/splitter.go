package pdf

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/kpauljoseph/pagesplit/internal/config"
	"github.com/kpauljoseph/pagesplit/pkg/logger"
	"github.com/kpauljoseph/pagesplit/pkg/models"
	"github.com/kpauljoseph/pagesplit/pkg/utils"
)

type SplitterConfig struct {
	ValidationMode string
	Logger         *logger.Logger
}

type Splitter struct {
	conf   *model.Configuration
	logger *logger.Logger
}

func NewSplitter(cfg SplitterConfig) *Splitter {
	// pdfcpu would otherwise create a config dir under the user's home.
	api.DisableConfigDir()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if cfg.ValidationMode == config.ValidationStrict {
		conf.ValidationMode = model.ValidationStrict
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Splitter{
		conf:   conf,
		logger: log,
	}
}

// Split writes every page of inputPath whose 1-based position lies in pages
// to outputDir as split_<position>.pdf, overwriting existing files. A range
// that matches nothing is not an error. Pages already written stay on disk
// if a later page fails.
func (s *Splitter) Split(ctx context.Context, inputPath, outputDir string, pages models.PageRange) ([]models.ExportedPage, error) {
	s.logger.Debug("Splitting %s (%s) into %s", inputPath, pages, outputDir)

	doc, err := s.load(inputPath)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Loaded %s with %d pages", inputPath, doc.PageCount)

	seq := newPageSequence(doc)
	exported := make([]models.ExportedPage, 0)

	for seq.Next() {
		select {
		case <-ctx.Done():
			return exported, ctx.Err()
		default:
		}

		pageNum := seq.PageNumber()
		if !pages.Contains(pageNum) {
			s.logger.Trace("Skipping page %d", pageNum)
			seq.Release()
			continue
		}

		page, err := seq.Page()
		if err != nil {
			return exported, fmt.Errorf("failed to split page %d: %w", pageNum, err)
		}

		outPath := OutputPath(outputDir, pageNum)
		err = writePage(page, outPath)
		seq.Release()
		if err != nil {
			return exported, fmt.Errorf("failed to write page %d: %w", pageNum, err)
		}

		hash, err := utils.GenerateFileHash(outPath)
		if err != nil {
			return exported, err
		}

		s.logger.Debug("Wrote page %d to %s (%s)", pageNum, outPath, utils.ShortHash(hash))
		exported = append(exported, models.ExportedPage{
			PageNumber: pageNum,
			Path:       outPath,
			Hash:       hash,
		})
	}

	s.logger.Debug("Exported %d of %d pages", len(exported), doc.PageCount)
	return exported, nil
}

func (s *Splitter) PageCount(inputPath string) (int, error) {
	doc, err := s.load(inputPath)
	if err != nil {
		return 0, err
	}
	return doc.PageCount, nil
}

func (s *Splitter) load(inputPath string) (*model.Context, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	doc, err := api.ReadValidateAndOptimize(f, s.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w", inputPath, err)
	}
	return doc, nil
}

func writePage(page io.Reader, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, page); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
