package langdetect

import "testing"

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "go source",
			content: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}",
			want:    "go",
		},
		{
			name:    "python source",
			content: "def hello():\n    print(\"hi\")\n",
			want:    "python",
		},
		{
			name:    "shebang wins",
			content: "#!/bin/bash\nls -la\n",
			want:    "bash",
		},
		{
			name:    "json object",
			content: "{\n  \"name\": \"pkg\",\n  \"version\": \"1.0.0\"\n}",
			want:    "json",
		},
		{
			name:    "yaml mapping",
			content: "name: demo\nversion: 2\n",
			want:    "yaml",
		},
		{
			name:    "sql query",
			content: "SELECT id, name FROM users WHERE id = 1;",
			want:    "sql",
		},
		{
			name:    "dockerfile",
			content: "FROM alpine:3.20\nRUN apk add curl\n",
			want:    "dockerfile",
		},
		{
			name:    "rust source",
			content: "fn main() {\n    println!(\"hi\");\n}",
			want:    "rust",
		},
		{
			name:    "html fragment",
			content: "<div class=\"box\">hello</div>",
			want:    "html",
		},
		{
			name:    "empty input",
			content: "",
			want:    Fallback,
		},
		{
			name:    "whitespace only",
			content: "   \n\t\n",
			want:    Fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Detect([]byte(tt.content)); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func BenchmarkDetect(b *testing.B) {
	content := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}")
	b.ReportAllocs()
	for b.Loop() {
		Detect(content)
	}
}
