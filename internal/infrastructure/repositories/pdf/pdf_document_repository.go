package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
	"github.com/rios0rios0/profilereport/internal/domain/repositories"
)

const (
	contentType = "application/pdf"
	fontFamily  = "Helvetica"
	creator     = "profilereport"
)

// PDFDocumentRepository renders page layouts with fpdf core fonts.
type PDFDocumentRepository struct{}

// NewPDFDocumentRepository creates a new PDF renderer.
func NewPDFDocumentRepository() repositories.DocumentRepository {
	return &PDFDocumentRepository{}
}

func (r *PDFDocumentRepository) ContentType() string { return contentType }

// Render draws every block on a single page of layout.Width x layout.Height
// points. Layout coordinates grow upwards, fpdf ones downwards. Lines that
// fall below the page are dropped.
func (r *PDFDocumentRepository) Render(layout entities.PageLayout) ([]byte, error) {
	//nolint:exhaustruct // FontDirStr is unused with core fonts
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: layout.Width, Ht: layout.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(layout.Title, true)
	doc.SetCreator(creator, true)
	doc.AddPage()

	translate := doc.UnicodeTranslatorFromDescriptor("")
	for _, block := range layout.Blocks {
		style := ""
		if block.Bold {
			style = "B"
		}
		doc.SetFont(fontFamily, style, block.FontSize)

		for i, line := range block.Lines {
			baseline := block.Y - float64(i)*block.LineHeight
			if baseline < 0 {
				break
			}
			doc.Text(block.X, layout.Height-baseline, translate(line))
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
