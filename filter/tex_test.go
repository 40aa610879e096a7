package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func runTex(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	f, err := NewTexFilter(opts...)
	require.NoError(t, err)
	buf := []byte(src)
	f.Process(buf)
	return string(buf)
}

func TestTexFilter(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "plain text",
			src:  "Hello world",
			want: "Hello world",
		},
		{
			name: "environment",
			src:  `\begin{document}Hello world\end{document}`,
			want: spaces(16) + "Hello world" + spaces(14),
		},
		{
			name: "unknown command keeps its parameter",
			src:  `\emph{word}`,
			want: spaces(6) + "word" + " ",
		},
		{
			name: "unchecked parameter",
			src:  `\cite{knuth} says`,
			want: spaces(12) + " says",
		},
		{
			name: "optional parameter",
			src:  `\usepackage[utf8]{inputenc} Text`,
			want: spaces(27) + " Text",
		},
		{
			name: "starred command",
			src:  `\section*{Intro}`,
			want: spaces(10) + "Intro" + " ",
		},
		{
			name: "comment",
			src:  "text % comment\nmore",
			want: "text " + spaces(9) + "\nmore",
		},
		{
			name: "escaped percent is not a comment",
			src:  `50\% off`,
			want: "50" + spaces(2) + " off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runTex(t, tt.src)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.src), "filtering never changes the length")
		})
	}
}

func TestTexFilter_CheckComments(t *testing.T) {
	src := "text % comment\nmore"
	assert.Equal(t, src, runTex(t, src, WithCheckComments(true)))
}

func TestTexFilter_Commands(t *testing.T) {
	t.Run("added command with checked parameter", func(t *testing.T) {
		got := runTex(t, `\foo{Checked}`, WithCommand("foo", "P"))
		assert.Equal(t, spaces(5)+"Checked"+" ", got)
	})

	t.Run("removed command is checked like text", func(t *testing.T) {
		got := runTex(t, `\cite{knuth}`, WithoutCommand("cite"))
		assert.Equal(t, spaces(6)+"knuth"+" ", got)
	})

	t.Run("bad signature", func(t *testing.T) {
		_, err := NewTexFilter(WithCommand("foo", "pq"))
		assert.ErrorIs(t, err, ErrBadSignature)

		f, err := NewTexFilter()
		require.NoError(t, err)
		assert.ErrorIs(t, f.AddCommand("", "p"), ErrBadSignature)
	})

	t.Run("default table is not shared", func(t *testing.T) {
		f, err := NewTexFilter()
		require.NoError(t, err)
		f.RemoveCommand("cite")
		assert.Equal(t, "p", defaultTexCommands["cite"])
	})
}

func TestTexFilter_StateSpansCalls(t *testing.T) {
	f, err := NewTexFilter()
	require.NoError(t, err)

	first := []byte(`\cite{kn`)
	second := []byte(`uth} ok`)
	f.Process(first)
	f.Process(second)

	assert.Equal(t, spaces(8), string(first))
	assert.Equal(t, spaces(4)+" ok", string(second))
}

func TestTexFilter_Metadata(t *testing.T) {
	f, err := NewTexFilter()
	require.NoError(t, err)
	assert.Equal(t, "tex", f.Name())
	assert.Equal(t, 0.35, f.Order())
}
