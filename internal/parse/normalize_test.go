package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "collapses internal whitespace", input: "John   Doe\tEngineer", want: "John Doe Engineer"},
		{name: "preserves line breaks", input: "John Doe\nEngineer", want: "John Doe\nEngineer"},
		{name: "crlf to lf", input: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "restores literal newline escapes", input: `John Doe\nEngineer`, want: "John Doe\nEngineer"},
		{name: "nbsp becomes space", input: "John\u00a0Doe", want: "John Doe"},
		{name: "drops control characters", input: "Jo\x00hn \x07Doe", want: "John Doe"},
		{name: "trims leading and trailing", input: "  \n  John Doe  \n  ", want: "John Doe"},
		{name: "whitespace only", input: " \t \n ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := "John   Doe\r\nSenior\tEngineer at Acme"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb"))
}
