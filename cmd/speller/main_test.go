package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testAffixes = `SET ISO8859-1

PFX A Y 1
PFX A 0 re .

SFX S Y 2
SFX S 0 es [sxzh]
SFX S 0 s [^sxzhy]

SFX D Y 2
SFX D 0 d e
SFX D 0 ed [^ey]
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// run executes the CLI with stdin and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"speller"}, args...))
	return out.String(), err
}

func findFlag(cmd *cli.Command, name string) cli.Flag {
	for _, flag := range cmd.Flags {
		for _, n := range flag.Names() {
			if n == name {
				return flag
			}
		}
	}
	return nil
}

func TestCommandFlags(t *testing.T) {
	app := newApp()

	required := map[string][]string{
		"load":   {"db", "affix", "words"},
		"check":  {"db", "affix"},
		"expand": {"affix"},
		"dump":   {"db", "affix"},
	}
	for _, cmd := range app.Commands {
		t.Run(cmd.Name, func(t *testing.T) {
			for _, name := range required[cmd.Name] {
				flag := findFlag(cmd, name)
				require.NotNil(t, flag, "flag %s", name)
				rf, ok := flag.(cli.RequiredFlag)
				require.True(t, ok)
				assert.True(t, rf.IsRequired(), "flag %s", name)
			}
		})
	}

	t.Run("check mode defaults to none", func(t *testing.T) {
		flag, ok := findFlag(app.Command("check"), "mode").(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "none", flag.Value)
	})
}

func TestMissingRequiredFlags(t *testing.T) {
	_, err := run(t, "", "load", "--db", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "affix")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "expand", "--affix", "x.aff", "walk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestExpandCommand(t *testing.T) {
	aff := writeFile(t, "test.aff", testAffixes)

	out, err := run(t, "", "expand", "--affix", aff, "walk", "SD")
	require.NoError(t, err)
	assert.Equal(t, "walk walks walked\n", out)

	out, err = run(t, "", "expand", "--affix", aff, "--max", "2", "walk", "SD")
	require.NoError(t, err)
	assert.Equal(t, "walk walks\n", out)

	out, err = run(t, "", "expand", "--affix", aff, "walk")
	require.NoError(t, err)
	assert.Equal(t, "walk\n", out)

	_, err = run(t, "", "expand", "--affix", aff)
	assert.Error(t, err)

	_, err = run(t, "", "expand", "--affix", filepath.Join(t.TempDir(), "missing.aff"), "walk")
	assert.Error(t, err)
}

func TestLoadCheckDump(t *testing.T) {
	aff := writeFile(t, "test.aff", testAffixes)
	db := filepath.Join(t.TempDir(), "dict")

	out, err := run(t, "2\nwalk/SD\nbox/S\n", "load", "--db", db, "--affix", aff, "--words", "-")
	require.NoError(t, err)
	assert.Equal(t, "loaded 2 stems, dictionary holds 2\n", out)

	words := writeFile(t, "words.txt", "the/S\n")
	out, err = run(t, "", "load", "--db", db, "--affix", aff, "--words", words, "--report-interval", "1")
	require.NoError(t, err)
	assert.Equal(t, "loaded 1 stems, dictionary holds 3\n", out)

	t.Run("check stdin", func(t *testing.T) {
		out, err := run(t, "walks boxs walked", "check", "--db", db, "--affix", aff)
		require.NoError(t, err)
		assert.Equal(t, "-:6: boxs\n", out)
	})

	t.Run("check files with a filter", func(t *testing.T) {
		doc := writeFile(t, "doc.tex", `\cite{zzz} walks wlk`)
		out, err := run(t, "", "check", "--db", db, "--affix", aff, "--mode", "tex", doc)
		require.NoError(t, err)
		assert.Equal(t, doc+":17: wlk\n", out)
	})

	t.Run("check with unknown mode", func(t *testing.T) {
		_, err := run(t, "", "check", "--db", db, "--affix", aff, "--mode", "html")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown filter")
	})

	t.Run("dump", func(t *testing.T) {
		out, err := run(t, "", "dump", "--db", db, "--affix", aff)
		require.NoError(t, err)
		assert.Equal(t, "box boxes\nthe thes\nwalk walks walked\n", out)
	})
}

func TestLoadCommand_BadWordList(t *testing.T) {
	aff := writeFile(t, "test.aff", testAffixes)

	_, err := run(t, "walk/S\nbad word\n", "load", "--db", t.TempDir(), "--affix", aff, "--words", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
