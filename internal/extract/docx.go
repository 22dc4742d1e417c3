package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/kmatsuda/resume-extractor/internal/types"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// extractDOCX pulls paragraph text out of word/document.xml. The closed
// format carries no usable link annotations or document metadata for our
// purposes, so both stay empty.
func extractDOCX(data []byte) (*types.ExtractionResult, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: open docx: %w", ErrExtractionFailed, err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open document.xml: %w", ErrExtractionFailed, err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read document.xml: %w", ErrExtractionFailed, err)
		}
		break
	}
	if len(docXML) == 0 {
		return nil, fmt.Errorf("%w: no document.xml found in docx", ErrExtractionFailed)
	}

	// Paragraph boundaries become newlines before tags are stripped, so
	// line-oriented heuristics keep working.
	text := string(docXML)
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTagRe.ReplaceAllString(text, " ")

	return &types.ExtractionResult{
		Text:       text,
		Hyperlinks: []types.Hyperlink{},
	}, nil
}
