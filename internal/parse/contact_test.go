package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmatsuda/resume-extractor/internal/types"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain", text: "Contact: jane.doe@example.com", want: "jane.doe@example.com"},
		{name: "first of many", text: "a@example.com b@example.org", want: "a@example.com"},
		{name: "plus tag", text: "jane+jobs@example.co.uk", want: "jane+jobs@example.co.uk"},
		{name: "none", text: "no email here", want: ""},
		{name: "missing tld", text: "jane@localhost", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "us dashed", text: "Phone: 555-123-4567", want: "5551234567"},
		{name: "us parens", text: "(555) 123 4567", want: "5551234567"},
		{name: "us with country code", text: "+1 555.123.4567", want: "5551234567"},
		{name: "bare ten digits", text: "5551234567", want: "5551234567"},
		{name: "none", text: "no number", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		meta  types.DocMetadata
		want  string
	}{
		{
			name:  "metadata author wins",
			lines: []string{"Jane Smith"},
			meta:  types.DocMetadata{Author: "John Doe"},
			want:  "John Doe",
		},
		{
			name:  "single word author rejected",
			lines: []string{"Jane Smith"},
			meta:  types.DocMetadata{Author: "Admin"},
			want:  "Jane Smith",
		},
		{
			name:  "organization author rejected",
			lines: []string{"Jane Smith"},
			meta:  types.DocMetadata{Author: "Acme Inc"},
			want:  "Jane Smith",
		},
		{
			name:  "skips noise lines",
			lines: []string{"Curriculum Vitae Resume", "Email: x@y.com", "Jane van der Berg"},
			want:  "Jane van der Berg",
		},
		{
			name:  "rejects all caps header",
			lines: []string{"PROFESSIONAL SUMMARY", "Jane Smith"},
			want:  "Jane Smith",
		},
		{
			name:  "rejects digit runs",
			lines: []string{"Jane Smith 20250101", "Jane Smith"},
			want:  "Jane Smith",
		},
		{
			name:  "only scans the top of the document",
			lines: []string{"", "", "", "", "", "", "", "Jane Smith"},
			want:  "",
		},
		{
			name:  "nothing qualifies",
			lines: []string{"x"},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.lines, tt.meta))
		})
	}
}
