package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New([]string{" Python ", `"React"`, "go", "x", "2024", "python", "PYTHON"})

	// Cleaned, deduplicated case-insensitively, sorted by folded form.
	assert.Equal(t, []string{"go", "Python", "React"}, v.Entries())
	assert.Equal(t, 3, v.Len())
}

func TestMatch(t *testing.T) {
	v := New([]string{"Python", "Go", "C++", "the"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "boundary match", text: "wrote python services", want: []string{"Python"}},
		{name: "no substring match", text: "pythonic style", want: nil},
		{name: "short entries never match", text: "go everywhere", want: nil},
		{name: "stopword entries never match", text: "the team", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Match(tt.text))
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	require.NoError(t, os.WriteFile(path, []byte("python, react\nkubernetes\r\n"), 0o644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"kubernetes", "python", "react"}, v.Entries())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	v := LoadOrDefault(filepath.Join(t.TempDir(), "absent.txt"))
	require.NotNil(t, v)
	assert.Equal(t, Default().Len(), v.Len())

	assert.Equal(t, Default().Len(), LoadOrDefault("").Len())
}
