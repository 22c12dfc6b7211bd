// Package gofpdf renders scanned folders to PDF using the gofpdf library.
package gofpdf

import (
	"errors"
	"fmt"
	"time"

	pdflib "github.com/jung-kurt/gofpdf"

	"github.com/fwojciec/codepdf"
)

// Compile-time interface verification.
var _ codepdf.Renderer = (*Renderer)(nil)

// Layout constants, in millimeters (A4 portrait).
const (
	titleHeight   = 8
	plainHeight   = 6
	codeHeight    = 4.5
	captionHeight = 5
	paragraphGap  = 4
	galleryCols   = 2
	cellPadding   = 2
)

// Renderer builds the styled output document.
type Renderer struct {
	tokenizer codepdf.Tokenizer
	theme     codepdf.Theme
}

// NewRenderer creates a renderer that styles code with the given tokenizer
// and theme.
func NewRenderer(tokenizer codepdf.Tokenizer, theme codepdf.Theme) (*Renderer, error) {
	if tokenizer == nil {
		return nil, errors.New("gofpdf: tokenizer cannot be nil")
	}
	return &Renderer{tokenizer: tokenizer, theme: theme}, nil
}

// Render writes the document for folder to outPath: per file a title and a
// styled code block (or a placeholder for binary and unreadable files), then
// the screenshots gallery and a terminal marker. Per-file problems degrade
// to plain text; only a document write failure is an error.
func (r *Renderer) Render(folder *codepdf.Folder, outPath string) error {
	pdf := pdflib.New("P", "mm", "A4", "")
	// A fixed creation date keeps repeated runs over an unchanged folder
	// byte-identical.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetCatalogSort(true)
	pdf.AddPage()

	d := &doc{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		theme: r.theme,
	}

	for _, file := range folder.Files {
		d.title(file.Name)
		switch {
		case file.ReadErr != nil:
			d.plain(fmt.Sprintf("<Could not read file: %v>", file.ReadErr))
		case file.Binary:
			d.plain("<Binary or non-text file - skipped>")
		default:
			d.code(r.tokenizer, file.Name, file.Content)
		}
		pdf.Ln(paragraphGap)
	}
	if len(folder.Files) == 0 {
		d.plain("No code files found in this folder.")
	}

	d.title("Screenshots:")
	pdf.Ln(paragraphGap)
	d.gallery(folder.Images)
	d.plain("Done.")

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// doc carries the per-run state of one document build.
type doc struct {
	pdf   *pdflib.Fpdf
	tr    func(string) string
	theme codepdf.Theme
}

func (d *doc) title(text string) {
	d.pdf.SetFont(d.theme.TitleFont, "B", d.theme.TitleSize)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, titleHeight, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *doc) plain(text string) {
	d.pdf.SetFont(d.theme.TitleFont, "", 12)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, plainHeight, d.tr(text), "", 1, "L", false, 0, "")
}

// code emits one dark-background paragraph per visual line of the file. If
// the tokenizer cannot style the content, the whole file is emitted as a
// single default-colored block instead of aborting the run.
func (d *doc) code(tokenizer codepdf.Tokenizer, filename, content string) {
	tokens := tokenizer.Tokenize(filename, content)
	if tokens == nil {
		tokens = []codepdf.Token{{Category: "Text", Text: content}}
	}
	for _, line := range codepdf.Segment(tokens) {
		d.codeLine(line)
	}
}

// codeLine paints the full-width background first, then writes each span as
// a colored run on top. An empty line still gets a single-space run so the
// shaded row does not collapse.
func (d *doc) codeLine(line codepdf.Line) {
	d.pdf.SetFont(d.theme.CodeFont, "", d.theme.CodeSize)
	if d.pdf.GetY()+codeHeight > d.pageBottom() {
		d.pdf.AddPage()
	}

	bg := d.theme.Background
	d.pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	d.pdf.Rect(d.pdf.GetX(), d.pdf.GetY(), d.contentWidth(), codeHeight, "F")

	if len(line) == 0 {
		line = codepdf.Line{{Category: "Text", Text: " "}}
	}
	for _, span := range line {
		c := d.theme.Classify(span.Category)
		d.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
		text := d.tr(span.Text)
		d.pdf.Cell(d.pdf.GetStringWidth(text), codeHeight, text)
	}
	d.pdf.Ln(codeHeight)
}

// gallery lays images into a two-column grid, row-major, each cell holding
// the scaled image and a caption with its filename.
func (d *doc) gallery(images []codepdf.Image) {
	if len(images) == 0 {
		d.plain("No screenshots found in folder.")
		return
	}

	colWidth := d.contentWidth() / galleryCols
	for i := 0; i < len(images); i += galleryCols {
		d.galleryRow(images[i:min(i+galleryCols, len(images))], colWidth)
	}
	d.pdf.Ln(paragraphGap)
}

func (d *doc) galleryRow(row []codepdf.Image, colWidth float64) {
	imgWidth := d.theme.ImageWidth
	if imgWidth > colWidth-2*cellPadding {
		imgWidth = colWidth - 2*cellPadding
	}

	type cell struct {
		image  codepdf.Image
		height float64 // image display height; 0 if the image failed to load
	}

	// Register images first so the row height is known before drawing.
	cells := make([]cell, len(row))
	rowHeight := float64(captionHeight + cellPadding)
	for i, img := range row {
		info := d.pdf.RegisterImageOptions(img.Path, pdflib.ImageOptions{})
		if d.pdf.Err() || info.Width() <= 0 {
			d.pdf.ClearError()
			cells[i] = cell{image: img}
			continue
		}
		height := imgWidth * info.Height() / info.Width()
		cells[i] = cell{image: img, height: height}
		if height+captionHeight+cellPadding > rowHeight {
			rowHeight = height + captionHeight + cellPadding
		}
	}

	if d.pdf.GetY()+rowHeight > d.pageBottom() {
		d.pdf.AddPage()
	}

	left, _, _, _ := d.pdf.GetMargins()
	y := d.pdf.GetY()
	for i, c := range cells {
		x := left + float64(i)*colWidth
		if c.height == 0 {
			d.pdf.SetFont(d.theme.TitleFont, "", d.theme.CaptionSize)
			d.pdf.SetTextColor(255, 0, 0)
			d.pdf.SetXY(x, y)
			notice := fmt.Sprintf("[Could not load: %s]", c.image.Name)
			d.pdf.CellFormat(colWidth, captionHeight, d.tr(notice), "", 0, "C", false, 0, "")
			continue
		}

		d.pdf.ImageOptions(c.image.Path, x+(colWidth-imgWidth)/2, y, imgWidth, 0, false, pdflib.ImageOptions{}, 0, "")
		d.pdf.SetFont(d.theme.TitleFont, "I", d.theme.CaptionSize)
		d.pdf.SetTextColor(0, 0, 0)
		d.pdf.SetXY(x, y+c.height)
		d.pdf.CellFormat(colWidth, captionHeight, d.tr(c.image.Name), "", 0, "C", false, 0, "")
	}
	d.pdf.SetXY(left, y+rowHeight)
}

func (d *doc) contentWidth() float64 {
	pageWidth, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	return pageWidth - left - right
}

func (d *doc) pageBottom() float64 {
	_, pageHeight := d.pdf.GetPageSize()
	_, _, _, bottom := d.pdf.GetMargins()
	return pageHeight - bottom
}
