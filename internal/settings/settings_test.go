package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolve_SectionsAndFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".editorconfig"), `root = true

[*]
indent_style = space
indent_size = 2
tab_width = 4

[*.go]
indent_style = tab
tab_width = 8
indent_size = tab

[Makefile]
indent_style = tab
indent_size = 3
`)

	fallback := Indentation{TabWidth: 4, IndentUnit: 4}
	cases := []struct {
		name string
		want Indentation
	}{
		{name: "notes.txt", want: Indentation{TabWidth: 4, IndentUnit: 2}},
		{name: "main.go", want: Indentation{TabWidth: 8, IndentUnit: 8, UseTabs: true}},
		{name: "Makefile", want: Indentation{TabWidth: 4, IndentUnit: 3, UseTabs: true}},
	}

	for _, tc := range cases {
		got, err := Resolve(filepath.Join(dir, tc.name), fallback)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestResolve_NoConfigKeepsFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".editorconfig"), "root = true\n")

	fallback := Indentation{TabWidth: 4, IndentUnit: 2}
	got, err := Resolve(filepath.Join(dir, "a.txt"), fallback)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != fallback {
		t.Fatalf("got %+v, want %+v", got, fallback)
	}
}
