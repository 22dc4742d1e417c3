// Package extract converts raw document bytes into plain text, hyperlink
// records, and document metadata. PDF extraction runs an ordered chain of
// strategies, falling back to the next on failure.
package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/kmatsuda/resume-extractor/internal/types"
)

var (
	// ErrUnsupportedFormat is returned for declared formats outside {pdf, docx, txt}.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtractionFailed is returned when every strategy for a format has been exhausted.
	ErrExtractionFailed = errors.New("document extraction failed")
	// ErrEmptyDocument is returned when extraction succeeds but yields no non-whitespace text.
	ErrEmptyDocument = errors.New("document contains no extractable text")
)

// Format is a declared document format.
type Format string

// Supported formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// ParseFormat maps a file extension (with or without leading dot) to a Format.
func ParseFormat(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "pdf":
		return FormatPDF, nil
	case "docx", "doc":
		return FormatDOCX, nil
	case "txt":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Extractor runs document extraction with a fixed PDF strategy chain.
type Extractor struct {
	pdfStrategies []pdfStrategy
}

// NewExtractor returns an Extractor with the default strategy chain:
// link-aware extraction, then layout extraction with annotation recovery,
// then a minimal raw content-stream scan.
func NewExtractor() *Extractor {
	return &Extractor{
		pdfStrategies: []pdfStrategy{
			&pdfRichStrategy{},
			&pdfLayoutStrategy{},
			&pdfRawStrategy{},
		},
	}
}

// Extract produces an ExtractionResult for the given bytes and declared format.
// It fails with ErrUnsupportedFormat for unknown formats, ErrExtractionFailed
// when all strategies raise, and ErrEmptyDocument when no non-whitespace text
// was recovered.
func (e *Extractor) Extract(data []byte, format Format) (*types.ExtractionResult, error) {
	var (
		result *types.ExtractionResult
		err    error
	)

	switch format {
	case FormatPDF:
		result, err = e.extractPDF(data)
	case FormatDOCX:
		result, err = extractDOCX(data)
	case FormatTXT:
		result, err = extractTXT(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(result.Text) == "" {
		return nil, ErrEmptyDocument
	}
	return result, nil
}

// extractPDF walks the strategy chain, logging each failure and
// accumulating reasons for the final error.
func (e *Extractor) extractPDF(data []byte) (*types.ExtractionResult, error) {
	var failures []error
	for _, s := range e.pdfStrategies {
		result, err := s.Extract(data)
		if err == nil {
			return result, nil
		}
		log.Warn().Err(err).Str("strategy", s.Name()).Msg("pdf extraction strategy failed, trying next")
		failures = append(failures, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, errors.Join(failures...))
}

func extractTXT(data []byte) (*types.ExtractionResult, error) {
	if !utf8.Valid(data) {
		// Keep the valid prefix; heuristics downstream are total over any string.
		data = []byte(strings.ToValidUTF8(string(data), ""))
	}
	return &types.ExtractionResult{
		Text:       string(data),
		Hyperlinks: []types.Hyperlink{},
	}, nil
}
