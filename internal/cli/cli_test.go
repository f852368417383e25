package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInfo() BuildInfo {
	return BuildInfo{Version: "test", Commit: "abc123", Date: "2026-01-01"}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(testInfo())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"build", "render", "search", "init", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(src, []byte("# Title\n\nHello *world*.\n"), 0o644))

	out, err := execute(t, "render", src)
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<em>world</em>")
}

func TestRenderCommand_Output(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.md")
	dst := filepath.Join(dir, "doc.html")
	require.NoError(t, os.WriteFile(src, []byte("plain paragraph\n"), 0o644))

	_, err := execute(t, "render", src, "-o", dst)
	require.NoError(t, err)

	written, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "<p>plain paragraph</p>\n", string(written))
}

func TestRenderCommand_CommonMarkFlavor(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(src, []byte("~~gone~~\n"), 0o644))

	out, err := execute(t, "render", "--flavor", "commonmark", src)
	require.NoError(t, err)
	assert.NotContains(t, out, "<del>")

	out, err = execute(t, "render", src)
	require.NoError(t, err)
	assert.Contains(t, out, "<del>gone</del>")
}

func TestRenderCommand_Errors(t *testing.T) {
	_, err := execute(t, "render", filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)

	src := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(src, []byte("x\n"), 0o644))
	_, err = execute(t, "render", "--flavor", "textile", src)
	assert.ErrorContains(t, err, "invalid flavor")
}

func TestBuildAndSearchCommands(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content")
	require.NoError(t, os.MkdirAll(content, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(content, "guide.md"),
		[]byte("# Installation Guide\n\nDownload the archive and unpack it.\n"), 0o644))

	cfgPath := filepath.Join(dir, "site.yaml")
	cfg := strings.Join([]string{
		"title: Test Site",
		"input_dir: " + content,
		"output_dir: " + filepath.Join(dir, "public"),
	}, "\n")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := execute(t, "build", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Built 1 page")

	page, err := os.ReadFile(filepath.Join(dir, "public", "guide.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Installation Guide")

	out, err = execute(t, "search", "--config", cfgPath, "install")
	require.NoError(t, err)
	assert.Contains(t, out, "Installation Guide")
	assert.Contains(t, out, "/guide.html")
	assert.Contains(t, out, "1 result")
}

func TestSearchCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content")
	require.NoError(t, os.MkdirAll(content, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(content, "api.md"),
		[]byte("# API Reference\n\nEndpoints and payloads.\n"), 0o644))

	cfgPath := filepath.Join(dir, "site.yaml")
	cfg := "input_dir: " + content + "\noutput_dir: " + filepath.Join(dir, "public") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := execute(t, "build", "--config", cfgPath)
	require.NoError(t, err)

	out, err := execute(t, "search", "--config", cfgPath, "--json", "endpoints")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "API Reference"`)
	assert.Contains(t, out, `"score"`)
}

func TestSearchCommand_MissingIndex(t *testing.T) {
	_, err := execute(t, "search", "--index", filepath.Join(t.TempDir(), "nope.json"), "query")
	assert.ErrorContains(t, err, "run 'inkwell build' first")
}

func TestVersionCommand(t *testing.T) {
	// The version logger writes to os.Stdout directly; just make sure
	// the command runs without error.
	_, err := execute(t, "version")
	require.NoError(t, err)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = execute(t, "init")
	require.NoError(t, err)

	cfg, err := os.ReadFile(filepath.Join(dir, "inkwell.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "input_dir: content")

	_, err = os.Stat(filepath.Join(dir, "content", "index.md"))
	require.NoError(t, err)

	// Second init must refuse to clobber without --force.
	_, err = execute(t, "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "init", "--force")
	require.NoError(t, err)
}

func TestI18nValidateCommand(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("en/common.json", `{"greeting": "Hello, {$name}!", "farewell": "Goodbye"}`)
	write("ja/common.json", `{"greeting": "{$name}さん、こんにちは", "farewell": "さようなら"}`)

	out, err := execute(t, "i18n", "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")

	// Placeholder drift must fail the command.
	write("ja/common.json", `{"greeting": "{$nom}さん、こんにちは"}`)
	out, err = execute(t, "i18n", "validate", dir)
	require.Error(t, err)
	assert.Contains(t, out, "ja common.greeting")
	assert.Contains(t, out, "not present in source message")
}

func TestI18nValidateCommand_MissingSourceLocale(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ja"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ja", "common.json"), []byte(`{"a": "b"}`), 0o644))

	_, err := execute(t, "i18n", "validate", dir)
	assert.ErrorContains(t, err, `source locale "en" not found`)
}
