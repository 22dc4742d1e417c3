package extract

import "github.com/kmatsuda/resume-extractor/internal/types"

// pdfStrategy is one extraction approach in the ordered PDF fallback chain.
// A strategy either returns a complete result or an error; partial output
// with an error is never propagated.
type pdfStrategy interface {
	Name() string
	Extract(data []byte) (*types.ExtractionResult, error)
}
