package parse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmatsuda/resume-extractor/internal/vocab"
)

func TestMatchSkills(t *testing.T) {
	v := vocab.New([]string{
		"Python", "JavaScript", "React", "Zig", "Erlang", "Machine Learning",
	})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "word boundary matching",
			text: "built services in python and zig",
			want: []string{"Python", "Zig"},
		},
		{
			name: "no substring matches",
			text: "pythonic code in zigzag patterns",
			want: []string{},
		},
		{
			name: "multi word entry",
			text: "applied machine learning models",
			want: []string{"Machine Learning"},
		},
		{
			name: "alias pulls in canonical",
			text: "frontend with reactjs",
			want: []string{"React"},
		},
		{
			name: "priority before long tail",
			text: "erlang and python",
			want: []string{"Python", "Erlang"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSkills(tt.text, v))
		})
	}
}

func TestMatchSkillsDeduplicatesVariants(t *testing.T) {
	v := vocab.New([]string{"Node.js", "NodeJS"})
	got := MatchSkills("experience with node.js services", v)
	assert.Len(t, got, 1)
}

func TestMatchSkillsCap(t *testing.T) {
	entries := make([]string, 0, 40)
	var text strings.Builder
	for i := 0; i < 40; i++ {
		term := fmt.Sprintf("skillterm%02d", i)
		entries = append(entries, term)
		text.WriteString(term + " ")
	}
	got := MatchSkills(text.String(), vocab.New(entries))
	assert.Len(t, got, 25)
}

func TestMatchSkillsIgnoresSectionHeaders(t *testing.T) {
	v := vocab.New([]string{"Skills", "Python"})
	got := MatchSkills("Technical Skills\npython", v)
	assert.Equal(t, []string{"Python"}, got)
}

func TestMatchSkillsNilVocabulary(t *testing.T) {
	assert.Empty(t, MatchSkills("python", nil))
}
