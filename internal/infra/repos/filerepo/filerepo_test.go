package filerepo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveInside(t *testing.T) {
	base := t.TempDir()

	got, err := ResolveInside(base, "a.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(base, "a.yaml") {
		t.Fatalf("unexpected path %q", got)
	}

	if _, err := ResolveInside(base, filepath.Join(base, "sub", "b.yaml")); err != nil {
		t.Fatalf("expected nested absolute path to be accepted, got %v", err)
	}

	for _, p := range []string{"../x.yaml", "sub/../../x.yaml", filepath.Join(t.TempDir(), "x.yaml")} {
		if _, err := ResolveInside(base, p); !errors.Is(err, ErrOutsideBase) {
			t.Fatalf("%q: expected ErrOutsideBase, got %v", p, err)
		}
	}
}

func TestFilesAndDecode(t *testing.T) {
	base := t.TempDir()
	for name, body := range map[string]string{
		"b.yaml":    "name: bee\n",
		"a.json":    `{"name":"ay"}`,
		"notes.txt": "skip",
	} {
		if err := os.WriteFile(filepath.Join(base, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(base, "dir.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := Files(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.json" || filepath.Base(files[1]) != "b.yaml" {
		t.Fatalf("unexpected files %v", files)
	}

	var v struct {
		Name string `json:"name" yaml:"name"`
	}
	for i, want := range []string{"ay", "bee"} {
		if err := Decode(files[i], &v); err != nil {
			t.Fatal(err)
		}
		if v.Name != want {
			t.Fatalf("decoded %q, want %q", v.Name, want)
		}
	}
	if StemID(files[1]) != "b" {
		t.Fatalf("unexpected stem %q", StemID(files[1]))
	}

	missing, err := Files(filepath.Join(base, "absent"))
	if err != nil || len(missing) != 0 {
		t.Fatalf("expected no files for missing dir, got %v %v", missing, err)
	}
}
