package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/firebird-suite/conflict/input"
	"github.com/simonhull/firebird-suite/conflict/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with answers on stdin and records exit calls.
func run(t *testing.T, answers string, args ...string) (string, []int) {
	t.Helper()

	var codes []int
	oldExit, oldStdin := exit, stdin
	exit = func(code int) { codes = append(codes, code) }
	stdin = strings.NewReader(answers)
	t.Cleanup(func() { exit, stdin = oldExit, oldStdin })

	root := RootCmd()
	root.AddCommand(ApplyCmd(), DiffCmd(), ConfigCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	require.NoError(t, root.Execute())
	return out.String(), codes
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestApply_ReplaceConflict(t *testing.T) {
	src, dest := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{
		"a.txt":     "hello",
		"same.txt":  "same\n",
		"new/b.txt": "brand new\n",
	})
	writeTree(t, dest, map[string]string{
		"a.txt":    "hello\n",
		"same.txt": "same\n",
	})

	out, codes := run(t, "y\n", "apply", src, dest)

	assert.Empty(t, codes)
	assert.Equal(t, "hello", readFile(t, filepath.Join(dest, "a.txt")))
	assert.Equal(t, "brand new\n", readFile(t, filepath.Join(dest, "new", "b.txt")))
	assert.Contains(t, out, "Replace a.txt?")
	assert.Equal(t, 1, strings.Count(out, "Replace "), "only the conflicting file is asked about")
}

func TestApply_AbortLeavesDestUntouched(t *testing.T) {
	src, dest := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "new a", "b.txt": "new b", "c.txt": "new c"})
	writeTree(t, dest, map[string]string{"b.txt": "old b"})

	_, codes := run(t, "x\n", "apply", src, dest)

	assert.Equal(t, []int{0}, codes)
	assert.Equal(t, "old b", readFile(t, filepath.Join(dest, "b.txt")))
	_, err := os.Stat(filepath.Join(dest, "a.txt"))
	assert.True(t, os.IsNotExist(err), "nothing is written on abort")
}

func TestApply_ReplaceAll(t *testing.T) {
	src, dest := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "new a", "b.txt": "new b"})
	writeTree(t, dest, map[string]string{"a.txt": "old a", "b.txt": "old b"})

	out, codes := run(t, "a\n", "apply", src, dest)

	assert.Empty(t, codes)
	assert.Equal(t, "new a", readFile(t, filepath.Join(dest, "a.txt")))
	assert.Equal(t, "new b", readFile(t, filepath.Join(dest, "b.txt")))
	assert.Equal(t, 1, strings.Count(out, "Replace "))
}

func TestApply_SkipAndDiff(t *testing.T) {
	src, dest := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "one\nTWO\n"})
	writeTree(t, dest, map[string]string{"a.txt": "one\ntwo\n"})

	out, codes := run(t, "d\nn\n", "apply", src, dest)

	assert.Empty(t, codes)
	assert.Equal(t, "one\ntwo\n", readFile(t, filepath.Join(dest, "a.txt")))
	assert.Contains(t, out, "File differences")
	assert.Equal(t, 2, strings.Count(out, "Replace a.txt?"))
}

func TestApply_QuietStillShowsDiff(t *testing.T) {
	src, dest := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "one\nTWO\n"})
	writeTree(t, dest, map[string]string{"a.txt": "one\ntwo\n"})

	out, codes := run(t, "d\nn\n", "apply", src, dest, "--quiet")

	assert.Empty(t, codes)
	assert.Equal(t, "one\ntwo\n", readFile(t, filepath.Join(dest, "a.txt")))
	assert.Contains(t, out, "File differences")
	assert.Contains(t, out, "TWO")
	assert.NotContains(t, out, "Showing diff for a.txt")
	assert.NotContains(t, out, "Skipping a.txt")
}

func TestApply_DryRun(t *testing.T) {
	src, dest := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "new"})

	out, codes := run(t, "", "apply", src, dest, "--dry-run")

	assert.Empty(t, codes)
	assert.Contains(t, out, "[DRY RUN] Write a.txt")
	_, err := os.Stat(filepath.Join(dest, "a.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestApply_Errors(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "x"})

	t.Run("missing dest", func(t *testing.T) {
		_, codes := run(t, "", "apply", src)
		assert.Equal(t, []int{1}, codes)
	})

	t.Run("missing source", func(t *testing.T) {
		_, codes := run(t, "", "apply", filepath.Join(src, "nope"), t.TempDir())
		assert.Equal(t, []int{1}, codes)
	})

	t.Run("unknown ui", func(t *testing.T) {
		_, codes := run(t, "", "apply", src, t.TempDir(), "--ui", "fancy")
		assert.Equal(t, []int{1}, codes)
	})

	t.Run("stdin closed on conflict", func(t *testing.T) {
		dest := t.TempDir()
		writeTree(t, dest, map[string]string{"a.txt": "different"})
		_, codes := run(t, "", "apply", src, dest)
		assert.Equal(t, []int{1}, codes)
		assert.Equal(t, "different", readFile(t, filepath.Join(dest, "a.txt")))
	})
}

func TestDiff(t *testing.T) {
	src, dest := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "one\nTWO\n", "same.txt": "s", "new.txt": "n"})
	writeTree(t, dest, map[string]string{"a.txt": "one\ntwo\n", "same.txt": "s"})

	out, codes := run(t, "", "diff", src, dest)

	assert.Empty(t, codes)
	assert.Contains(t, out, "-two")
	assert.Contains(t, out, "+TWO")
	assert.NotContains(t, out, "same.txt")
	assert.NotContains(t, out, "new.txt")
	assert.Equal(t, "one\ntwo\n", readFile(t, filepath.Join(dest, "a.txt")))
}

func TestConfigInit(t *testing.T) {
	oldFs := configFs
	configFs = afero.NewMemMapFs()
	t.Cleanup(func() { configFs = oldFs })

	_, codes := run(t, "", "config", "init", "./app")
	assert.Empty(t, codes)

	data, err := afero.ReadFile(configFs, config.FileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dest: ./app")

	// Declining keeps the existing file.
	var prompt bytes.Buffer
	input.SetIO(strings.NewReader("n\n"), &prompt)
	t.Cleanup(func() { input.SetIO(os.Stdin, os.Stdout) })

	_, codes = run(t, "", "config", "init", "./other")
	assert.Empty(t, codes)
	assert.Contains(t, prompt.String(), "Overwrite .conflict.yml?")

	data, err = afero.ReadFile(configFs, config.FileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dest: ./app")

	_, codes = run(t, "", "config", "init", "./other", "--force")
	assert.Empty(t, codes)
	data, _ = afero.ReadFile(configFs, config.FileName)
	assert.Contains(t, string(data), "dest: ./other")
}

func TestConfigInit_PromptsForDest(t *testing.T) {
	oldFs := configFs
	configFs = afero.NewMemMapFs()
	t.Cleanup(func() { configFs = oldFs })

	var prompt bytes.Buffer
	input.SetIO(strings.NewReader("./site\n"), &prompt)
	t.Cleanup(func() { input.SetIO(os.Stdin, os.Stdout) })

	_, codes := run(t, "", "config", "init")
	assert.Empty(t, codes)
	assert.Contains(t, prompt.String(), "Destination")

	data, err := afero.ReadFile(configFs, config.FileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dest: ./site")
}

func TestConfigShow(t *testing.T) {
	out, codes := run(t, "", "config", "show", "--ui", "menu", "--pager-threshold", "12")

	assert.Empty(t, codes)
	assert.Contains(t, out, "ui: menu")
	assert.Contains(t, out, "pager_threshold: 12")
}
