package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmatsuda/resume-extractor/internal/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		ext      string
		expected Format
		wantErr  bool
	}{
		{"pdf", "pdf", FormatPDF, false},
		{"pdf with dot", ".pdf", FormatPDF, false},
		{"pdf uppercase", ".PDF", FormatPDF, false},
		{"docx", "docx", FormatDOCX, false},
		{"legacy doc maps to docx", ".doc", FormatDOCX, false},
		{"txt", "txt", FormatTXT, false},
		{"exe rejected", "exe", "", true},
		{"empty rejected", "", "", true},
		{"html rejected", ".html", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.ext)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestExtract_UnknownFormat(t *testing.T) {
	e := NewExtractor()
	_, err := e.Extract([]byte("content"), Format("exe"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_TXT(t *testing.T) {
	e := NewExtractor()

	result, err := e.Extract([]byte("John Doe\nSoftware Engineer\n"), FormatTXT)
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSoftware Engineer\n", result.Text)
	assert.Empty(t, result.Hyperlinks)
	assert.Equal(t, types.DocMetadata{}, result.Metadata)
}

func TestExtract_TXT_InvalidUTF8(t *testing.T) {
	e := NewExtractor()

	result, err := e.Extract([]byte("John Doe\xff\xfe rest"), FormatTXT)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "John Doe")
}

func TestExtract_EmptyDocument(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte("")},
		{"whitespace only", []byte("  \n\t \n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(tt.data, FormatTXT)
			assert.ErrorIs(t, err, ErrEmptyDocument)
		})
	}
}

// fakeStrategy lets chain behavior be tested without real PDF bytes.
type fakeStrategy struct {
	name   string
	result *types.ExtractionResult
	err    error
	called *bool
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Extract(_ []byte) (*types.ExtractionResult, error) {
	if f.called != nil {
		*f.called = true
	}
	return f.result, f.err
}

func TestExtractPDF_ChainStopsAtFirstSuccess(t *testing.T) {
	secondCalled := false
	e := &Extractor{pdfStrategies: []pdfStrategy{
		&fakeStrategy{name: "first", result: &types.ExtractionResult{Text: "from first"}},
		&fakeStrategy{name: "second", result: &types.ExtractionResult{Text: "from second"}, called: &secondCalled},
	}}

	result, err := e.Extract([]byte("%PDF-"), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "from first", result.Text)
	assert.False(t, secondCalled, "later strategies should not run after a success")
}

func TestExtractPDF_ChainFallsBack(t *testing.T) {
	e := &Extractor{pdfStrategies: []pdfStrategy{
		&fakeStrategy{name: "first", err: errors.New("corrupt xref")},
		&fakeStrategy{name: "second", result: &types.ExtractionResult{Text: "recovered"}},
	}}

	result, err := e.Extract([]byte("%PDF-"), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "recovered", result.Text)
}

func TestExtractPDF_AllStrategiesFail(t *testing.T) {
	e := &Extractor{pdfStrategies: []pdfStrategy{
		&fakeStrategy{name: "first", err: errors.New("corrupt xref")},
		&fakeStrategy{name: "second", err: errors.New("bad stream")},
	}}

	_, err := e.Extract([]byte("%PDF-"), FormatPDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
	// Failure reasons from every strategy are preserved.
	assert.Contains(t, err.Error(), "corrupt xref")
	assert.Contains(t, err.Error(), "bad stream")
}

func TestExtractPDF_RealChainRejectsGarbage(t *testing.T) {
	e := NewExtractor()
	_, err := e.Extract([]byte("this is not a pdf at all"), FormatPDF)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestContentStreamText(t *testing.T) {
	tests := []struct {
		name     string
		stream   string
		expected string
	}{
		{
			name:     "Tj operator",
			stream:   "BT\n(Hello) Tj\nET",
			expected: "Hello",
		},
		{
			name:     "TJ array operator",
			stream:   "BT\n[(Jane) -100 ( Smith)] TJ\nET",
			expected: "Jane Smith",
		},
		{
			name:     "octal escape",
			stream:   "(A\\040B) Tj",
			expected: "A B",
		},
		{
			name:     "tab escape",
			stream:   "(a\\tb) Tj",
			expected: "a\tb",
		},
		{
			name:     "positioning emits line breaks",
			stream:   "(line one) Tj\n0 -12 Td\n(line two) Tj",
			expected: "line one\nline two",
		},
		{
			name:     "no text operators",
			stream:   "q 1 0 0 1 0 0 cm Q",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textFromContentStream([]byte(tt.stream)))
		})
	}
}

func TestRawStrategy_NotAPDF(t *testing.T) {
	s := &pdfRawStrategy{}
	_, err := s.Extract([]byte("plain text"))
	assert.Error(t, err)
}

func TestRawStrategy_UncompressedStream(t *testing.T) {
	data := []byte("%PDF-1.4\n1 0 obj\n<< /Length 20 >>\nstream\n(Raw Text Here) Tj\nendstream\nendobj\n")

	s := &pdfRawStrategy{}
	result, err := s.Extract(data)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Raw Text Here")
}
