package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kmatsuda/resume-extractor/internal/types"
)

// Margins by which a link annotation's rectangle is expanded when
// collecting nearby words for context text.
const (
	linkContextMarginX = 10.0
	linkContextMarginY = 5.0
)

// pdfRichStrategy is the first-choice PDF extractor: per-page text plus
// link annotations with surrounding-word context plus trailer metadata.
type pdfRichStrategy struct{}

func (s *pdfRichStrategy) Name() string { return "pdf-rich" }

// Extract reads the document with ledongthuc/pdf. The underlying reader
// panics on some malformed documents; panics become errors so the chain
// can fall through to the next strategy.
func (s *pdfRichStrategy) Extract(data []byte) (result *types.ExtractionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	if r.NumPage() == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	var sb strings.Builder
	hyperlinks := []types.Hyperlink{}

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, perr := page.GetPlainText(nil)
		if perr != nil {
			return nil, fmt.Errorf("page %d text: %w", i, perr)
		}
		sb.WriteString(text)
		sb.WriteString("\n")

		hyperlinks = append(hyperlinks, pageLinks(page, i)...)
	}

	return &types.ExtractionResult{
		Text:       sb.String(),
		Hyperlinks: hyperlinks,
		Metadata:   trailerMetadata(r),
	}, nil
}

// pageLinks walks the page's Annots array for Link annotations carrying a
// URI action.
func pageLinks(page pdf.Page, pageNum int) []types.Hyperlink {
	annots := page.V.Key("Annots")
	if annots.Kind() != pdf.Array {
		return nil
	}

	var links []types.Hyperlink
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Key("Subtype").Name() != "Link" {
			continue
		}
		uri := annot.Key("A").Key("URI")
		if uri.Kind() != pdf.String {
			continue
		}
		links = append(links, types.Hyperlink{
			URL:     uri.RawString(),
			Page:    pageNum,
			Context: linkContext(page, annot.Key("Rect")),
		})
	}
	return links
}

// linkContext collects words intersecting the annotation rectangle
// expanded by a fixed margin. Context is best-effort: any shortfall
// yields an empty string, never an error.
func linkContext(page pdf.Page, rect pdf.Value) string {
	if rect.Kind() != pdf.Array || rect.Len() != 4 {
		return ""
	}
	x0 := rect.Index(0).Float64() - linkContextMarginX
	y0 := rect.Index(1).Float64() - linkContextMarginY
	x1 := rect.Index(2).Float64() + linkContextMarginX
	y1 := rect.Index(3).Float64() + linkContextMarginY
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	var sb strings.Builder
	for _, t := range page.Content().Text {
		if t.X >= x0 && t.X <= x1 && t.Y >= y0 && t.Y <= y1 {
			sb.WriteString(t.S)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// trailerMetadata reads the trailer Info dictionary; absent entries are
// empty strings.
func trailerMetadata(r *pdf.Reader) types.DocMetadata {
	info := r.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return types.DocMetadata{}
	}
	return types.DocMetadata{
		Title:    pdfString(info.Key("Title")),
		Author:   pdfString(info.Key("Author")),
		Subject:  pdfString(info.Key("Subject")),
		Creator:  pdfString(info.Key("Creator")),
		Producer: pdfString(info.Key("Producer")),
	}
}

func pdfString(v pdf.Value) string {
	if v.Kind() != pdf.String {
		return ""
	}
	return v.RawString()
}
