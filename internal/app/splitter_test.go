package app_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pagesplit/internal/app"
	"github.com/kpauljoseph/pagesplit/internal/pdf"
	"github.com/kpauljoseph/pagesplit/internal/testutil"
	"github.com/kpauljoseph/pagesplit/pkg/models"
)

type recordingSplitter struct {
	calls []models.PageRange
	err   error
}

func (s *recordingSplitter) Split(_ context.Context, _, _ string, pages models.PageRange) ([]models.ExportedPage, error) {
	s.calls = append(s.calls, pages)
	return nil, s.err
}

func (s *recordingSplitter) PageCount(string) (int, error) {
	return 0, s.err
}

func dirEntries(dir string) []string {
	entries, err := os.ReadDir(dir)
	Expect(err).NotTo(HaveOccurred())
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

var _ = Describe("Splitter App", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("with a recording splitter", func() {
		var (
			fake     *recordingSplitter
			splitApp *app.SplitterApp
		)

		BeforeEach(func() {
			fake = &recordingSplitter{}
			splitApp = app.NewSplitterApp(fake, appTestLogger())
			splitApp.InputPath = "in.pdf"
			splitApp.OutputDir = "out"
		})

		It("should satisfy the splitter command interface", func() {
			var _ app.SplitterCommands = splitApp
		})

		It("should start in single page mode", func() {
			Expect(splitApp.Mode).To(Equal(models.ModeSinglePage))
		})

		It("should split a single page as a degenerate range", func() {
			splitApp.PageText = "3"
			splitApp.StartText = "1"
			splitApp.EndText = "9"

			res := splitApp.SplitPDF(ctx)
			Expect(res.Success).To(BeTrue())
			Expect(fake.calls).To(Equal([]models.PageRange{{Start: 3, End: 3}}))
			Expect(splitApp.Log).To(Equal([]string{app.SplitSuccessMessage}))
		})

		It("should use both bounds in range mode", func() {
			splitApp.SetMode(models.ModePageRange)
			splitApp.PageText = "x"
			splitApp.StartText = "2"
			splitApp.EndText = "4"

			Expect(splitApp.SplitPDF(ctx).Success).To(BeTrue())
			Expect(fake.calls).To(Equal([]models.PageRange{{Start: 2, End: 4}}))
		})

		It("should not call the splitter when page input is not numeric", func() {
			splitApp.SetRange("two", "4")

			res := splitApp.SplitPDF(ctx)
			Expect(res.Success).To(BeFalse())
			Expect(fake.calls).To(BeEmpty())
			Expect(splitApp.LastLog()).To(HavePrefix("Error: "))
			Expect(splitApp.LastLog()).To(ContainSubstring(`"two"`))
		})

		It("should log splitter failures as one line and stay usable", func() {
			fake.err = errors.New("failed to read PDF in.pdf: malformed")
			splitApp.SetPage("1")

			res := splitApp.SplitPDF(ctx)
			Expect(res.Success).To(BeFalse())
			Expect(res.Message).To(Equal("failed to read PDF in.pdf: malformed"))

			fake.err = nil
			Expect(splitApp.SplitPDF(ctx).Success).To(BeTrue())
			Expect(splitApp.Log).To(Equal([]string{
				"Error: failed to read PDF in.pdf: malformed",
				app.SplitSuccessMessage,
			}))
		})

		It("should report an empty log before any split", func() {
			Expect(splitApp.LastLog()).To(BeEmpty())
		})

		It("should run without a logger", func() {
			quiet := app.NewSplitterApp(fake, nil)
			quiet.InputPath = "in.pdf"
			quiet.SetRange("1", "2")
			Expect(quiet.SplitPDF(ctx).Success).To(BeTrue())

			fake.err = errors.New("failed to read PDF in.pdf: malformed")
			Expect(quiet.SplitPDF(ctx).Success).To(BeFalse())
			Expect(fake.calls).To(Equal([]models.PageRange{{Start: 1, End: 2}, {Start: 1, End: 2}}))
		})

		It("should reject page input with surrounding whitespace", func() {
			splitApp.SetPage(" 3")

			res := splitApp.SplitPDF(ctx)
			Expect(res.Success).To(BeFalse())
			Expect(fake.calls).To(BeEmpty())
		})
	})

	Context("end to end", func() {
		const pageCount = 6

		var (
			testDir   string
			outputDir string
			splitApp  *app.SplitterApp
		)

		BeforeEach(func() {
			var err error
			testDir, err = os.MkdirTemp("", "splitter-app-test-*")
			Expect(err).NotTo(HaveOccurred())

			outputDir = filepath.Join(testDir, "out")
			Expect(os.MkdirAll(outputDir, 0755)).To(Succeed())

			source := filepath.Join(testDir, "source.pdf")
			Expect(testutil.WritePDF(source, pageCount)).To(Succeed())

			splitApp = app.NewSplitterApp(pdf.NewSplitter(pdf.SplitterConfig{Logger: appTestLogger()}), appTestLogger())
			splitApp.InputPath = source
			splitApp.OutputDir = outputDir
		})

		AfterEach(func() {
			os.RemoveAll(testDir)
		})

		DescribeTable("valid ranges write end-start+1 files",
			func(start, end int) {
				splitApp.SetRange(fmt.Sprint(start), fmt.Sprint(end))
				res := splitApp.SplitPDF(ctx)
				Expect(res.Success).To(BeTrue())
				Expect(res.Pages).To(HaveLen(end - start + 1))

				var expected []string
				for k := start; k <= end; k++ {
					expected = append(expected, pdf.OutputFileName(k))
				}
				Expect(dirEntries(outputDir)).To(ConsistOf(expected))
			},
			Entry("all pages", 1, pageCount),
			Entry("a middle span", 2, 5),
			Entry("one page", 4, 4),
		)

		DescribeTable("ranges that select nothing still succeed",
			func(start, end string) {
				splitApp.SetRange(start, end)
				res := splitApp.SplitPDF(ctx)
				Expect(res.Success).To(BeTrue())
				Expect(res.Pages).To(BeEmpty())
				Expect(splitApp.LastLog()).To(Equal(app.SplitSuccessMessage))
				Expect(dirEntries(outputDir)).To(BeEmpty())
			},
			Entry("start after end", "5", "2"),
			Entry("past the last page", "7", "10"),
		)

		It("should give the same files for single page and range mode", func() {
			splitApp.SetPage("3")
			Expect(splitApp.SplitPDF(ctx).Success).To(BeTrue())
			single := dirEntries(outputDir)

			Expect(os.RemoveAll(outputDir)).To(Succeed())
			Expect(os.MkdirAll(outputDir, 0755)).To(Succeed())

			splitApp.SetRange("3", "3")
			Expect(splitApp.SplitPDF(ctx).Success).To(BeTrue())
			Expect(dirEntries(outputDir)).To(Equal(single))
			Expect(single).To(Equal([]string{"split_3.pdf"}))
		})

		It("should leave the output directory alone on a parse error", func() {
			keep := filepath.Join(outputDir, "keep.txt")
			Expect(os.WriteFile(keep, []byte("untouched"), 0644)).To(Succeed())

			splitApp.SetRange("1", "end")
			res := splitApp.SplitPDF(ctx)
			Expect(res.Success).To(BeFalse())
			Expect(splitApp.LastLog()).To(HavePrefix("Error: "))
			Expect(dirEntries(outputDir)).To(Equal([]string{"keep.txt"}))
		})

		It("should create no files for an unreadable input", func() {
			splitApp.InputPath = filepath.Join(testDir, "missing.pdf")
			splitApp.SetRange("1", "2")

			res := splitApp.SplitPDF(ctx)
			Expect(res.Success).To(BeFalse())
			Expect(splitApp.LastLog()).To(HavePrefix("Error: "))
			Expect(dirEntries(outputDir)).To(BeEmpty())
		})

		It("should be scriptable through the command registry", func() {
			input := strings.Join([]string{
				"range 2 3",
				"split",
				"page abc",
				"split",
				"log",
			}, "\n")

			var out bytes.Buffer
			Expect(app.SplitterRegistry(splitApp).Serve(ctx, strings.NewReader(input), &out, "")).To(Succeed())

			Expect(dirEntries(outputDir)).To(ConsistOf("split_2.pdf", "split_3.pdf"))
			Expect(splitApp.Log).To(HaveLen(2))
			Expect(out.String()).To(ContainSubstring(app.SplitSuccessMessage))
			Expect(out.String()).To(ContainSubstring(`Error: invalid page number "abc"`))
		})

		It("should browse for PDFs", func() {
			res := app.SplitterRegistry(splitApp).Execute(ctx, "browse "+testDir)
			Expect(res.Success).To(BeTrue())
			Expect(res.Message).To(ContainSubstring("source.pdf"))
		})

		It("should reject a range command without two bounds", func() {
			res := app.SplitterRegistry(splitApp).Execute(ctx, "range 2")
			Expect(res.Success).To(BeFalse())
			Expect(res.Message).To(ContainSubstring("START and END"))
		})
	})
})
