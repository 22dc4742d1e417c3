package extract

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/kmatsuda/resume-extractor/internal/types"
)

// pdfRawStrategy is the last-resort PDF extractor: it inflates raw
// stream objects and harvests show-text operands without interpreting
// document structure. Text only, no hyperlinks or metadata.
type pdfRawStrategy struct{}

func (s *pdfRawStrategy) Name() string { return "pdf-raw" }

var (
	streamStart = []byte("stream")
	streamEnd   = []byte("endstream")
)

func (s *pdfRawStrategy) Extract(data []byte) (*types.ExtractionResult, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, fmt.Errorf("missing %%PDF header")
	}

	var sb strings.Builder
	for _, stream := range rawStreams(data) {
		if inflated, err := inflate(stream); err == nil {
			stream = inflated
		}
		text := textFromContentStream(stream)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		return nil, fmt.Errorf("no text recovered from raw streams")
	}
	return &types.ExtractionResult{
		Text:       sb.String(),
		Hyperlinks: []types.Hyperlink{},
	}, nil
}

// rawStreams returns the byte ranges between stream/endstream keywords.
func rawStreams(data []byte) [][]byte {
	var streams [][]byte
	for pos := 0; pos < len(data); {
		start := bytes.Index(data[pos:], streamStart)
		if start < 0 {
			break
		}
		start += pos + len(streamStart)
		// Skip the EOL following the stream keyword.
		for start < len(data) && (data[start] == '\r' || data[start] == '\n') {
			start++
		}
		end := bytes.Index(data[start:], streamEnd)
		if end < 0 {
			break
		}
		streams = append(streams, data[start:start+end])
		pos = start + end + len(streamEnd)
	}
	return streams
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
