// Package langdetect guesses the language of fenced code blocks that
// carry no info string, so the HTML renderer can still emit a
// language-* class. Detection combines go-enry with a few cheap
// fence-content heuristics that outrank the statistical classifier.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when nothing matches with confidence.
const Fallback = "text"

// classifier candidates, in enry's canonical spelling.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// heuristics run before the classifier; the first non-empty answer
// wins. Order matters: the more distinctive syntaxes come first.
var heuristics = []func([]byte) string{
	sniffGo,
	sniffRust,
	sniffPython,
	sniffHTML,
	sniffJSON,
	sniffDockerfile,
	sniffSQL,
	sniffYAML,
}

// Detect returns the fence tag for content, or Fallback when the
// content is empty or detection is not confident.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Fallback
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	for _, sniff := range heuristics {
		if lang := sniff(content); lang != "" {
			return lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return fenceTag(lang)
	}
	return Fallback
}

func sniffGo(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if bytes.HasPrefix(trimmed, []byte("package ")) ||
		bytes.Contains(content, []byte("func main()")) ||
		bytes.Contains(content, []byte(":= ")) {
		return "go"
	}
	return ""
}

func sniffRust(content []byte) string {
	if bytes.Contains(content, []byte("println!")) ||
		bytes.Contains(content, []byte("let mut ")) ||
		bytes.Contains(content, []byte("impl ")) {
		return "rust"
	}
	return ""
}

func sniffPython(content []byte) string {
	if bytes.Contains(content, []byte("def ")) && bytes.Contains(content, []byte(":")) {
		return "python"
	}
	if bytes.Contains(content, []byte("import ")) && bytes.Contains(content, []byte("print(")) {
		return "python"
	}
	return ""
}

func sniffHTML(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if bytes.HasPrefix(trimmed, []byte("<!DOCTYPE")) ||
		bytes.HasPrefix(trimmed, []byte("<html")) ||
		bytes.HasPrefix(trimmed, []byte("<div")) {
		return "html"
	}
	return ""
}

func sniffJSON(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) < 2 {
		return ""
	}
	first, last := trimmed[0], trimmed[len(trimmed)-1]
	if (first == '{' && last == '}') || (first == '[' && last == ']') {
		if bytes.Contains(trimmed, []byte(`":`)) || first == '[' {
			return "json"
		}
	}
	return ""
}

func sniffDockerfile(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if bytes.HasPrefix(trimmed, []byte("FROM ")) &&
		(bytes.Contains(content, []byte("RUN ")) ||
			bytes.Contains(content, []byte("COPY ")) ||
			bytes.Contains(content, []byte("WORKDIR "))) {
		return "dockerfile"
	}
	return ""
}

func sniffSQL(content []byte) string {
	head := strings.ToUpper(string(bytes.TrimSpace(content)))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(head, kw) {
			return "sql"
		}
	}
	return ""
}

// sniffYAML counts plain key: value lines; two or more is a match.
func sniffYAML(content []byte) string {
	pairs := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' || line[0] == '"' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") {
			pairs++
		}
	}
	if pairs >= 2 {
		return "yaml"
	}
	return ""
}

// fenceTag converts enry's canonical name to the lowercase tag used in
// Markdown fences.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
