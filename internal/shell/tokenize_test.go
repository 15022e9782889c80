package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vsh/pkg/vsh"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantArgs []string
	}{
		{"ls", "ls", []string{}},
		{"  cd   docs  ", "cd", []string{"docs"}},
		{`cd "my dir"`, "cd", []string{"my dir"}},
		{`ls 'a b' c`, "ls", []string{"a b", "c"}},
		{`cd my\ dir`, "cd", []string{"my dir"}},
		{"cd b a", "cd", []string{"b", "a"}},
		{"#foo", "#foo", []string{}},
		{"ls #x", "ls", []string{"#x"}},
		{"cd #notes extra", "cd", []string{"#notes", "extra"}},
		{`cd "#notes"`, "cd", []string{"#notes"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := Tokenize(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, cmd.Name)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, cmd.Args)
				return
			}
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestTokenize_Blank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		cmd, err := Tokenize(line)
		require.NoError(t, err)
		assert.True(t, cmd.IsEmpty())
	}
}

func TestTokenize_UnterminatedQuote(t *testing.T) {
	for _, line := range []string{`cd "docs`, `ls 'x`, `cd docs\`} {
		_, err := Tokenize(line)
		assert.ErrorIs(t, err, vsh.ErrParse, line)
	}
}
