package bundle

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveTwoLevelsUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "package.json"), `{"name": "foo"}`)
	file := filepath.Join(root, "pkg", "a", "b", "index.js")
	writeFile(t, file, "")

	r := NewResolver(root, DefaultConfig())
	name, ok := r.Resolve(file)
	if !ok || name != "foo" {
		t.Errorf("Resolve = %q, %v; want foo, true", name, ok)
	}
}

func TestResolveNoManifest(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a", "b", "index.js")
	writeFile(t, file, "")

	r := NewResolver(root, DefaultConfig())
	if name, ok := r.Resolve(file); ok {
		t.Errorf("Resolve = %q, true; want no package", name)
	}
}

func TestResolveRelativeToRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "lodash", "package.json"), `{"name": "lodash", "version": "4.17.21"}`)

	r := NewResolver(root, DefaultConfig())
	name, ok := r.Resolve("./node_modules/lodash/fp/map.js")
	if !ok || name != "lodash" {
		t.Errorf("Resolve = %q, %v; want lodash, true", name, ok)
	}
}

func TestResolveSkipsUnusableManifests(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, "node_modules", "@babel", "runtime")
	writeFile(t, filepath.Join(base, "package.json"), `{"name": "@babel/runtime"}`)
	// Nested marker manifests: one without a name, one malformed.
	writeFile(t, filepath.Join(base, "helpers", "esm", "package.json"), `{"type": "module"}`)
	writeFile(t, filepath.Join(base, "helpers", "package.json"), `{"name": `)

	r := NewResolver(root, DefaultConfig())
	name, ok := r.Resolve("./node_modules/@babel/runtime/helpers/esm/extends.js")
	if !ok || name != "@babel/runtime" {
		t.Errorf("Resolve = %q, %v; want @babel/runtime, true", name, ok)
	}
}

func TestResolveNearestWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "my-app"}`)
	writeFile(t, filepath.Join(root, "node_modules", "a", "package.json"), `{"name": "a"}`)
	writeFile(t, filepath.Join(root, "node_modules", "a", "node_modules", "b", "package.json"), `{"name": "b"}`)

	r := NewResolver(root, DefaultConfig())
	tests := map[string]string{
		"./node_modules/a/index.js":                  "a",
		"./node_modules/a/node_modules/b/lib/b.js":   "b",
		"./node_modules/unpacked/index.js":           "my-app",
		"./node_modules/a/node_modules/b/../../x.js": "a",
	}
	for path, want := range tests {
		if got, ok := r.Resolve(path); !ok || got != want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", path, got, ok, want)
		}
	}
}

func TestResolveEmptyPath(t *testing.T) {
	r := NewResolver(t.TempDir(), DefaultConfig())
	if _, ok := r.Resolve(""); ok {
		t.Error("Resolve(\"\") should not resolve")
	}
}

func TestAncestors(t *testing.T) {
	dir := filepath.Join(string(filepath.Separator), "a", "b", "c")
	got := slices.Collect(Ancestors(dir))
	want := []string{
		dir,
		filepath.Join(string(filepath.Separator), "a", "b"),
		filepath.Join(string(filepath.Separator), "a"),
		string(filepath.Separator),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Ancestors(%q) = %v, want %v", dir, got, want)
	}

	// Early stop.
	var first string
	for d := range Ancestors(dir) {
		first = d
		break
	}
	if first != dir {
		t.Errorf("first ancestor = %q, want %q", first, dir)
	}
}
