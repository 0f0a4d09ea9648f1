package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/salsasteve/rainbow/internal/schema"
)

const peopleYAML = `id: people
name: People
description: contact list
columns:
  - name: first
    type: FirstName
  - name: email
    type: Email
`

func TestListAndGet(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "people.yaml"), []byte(peopleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "colors.json"), []byte(`{"name":"colors","spec":"c:Color,n:Number"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "broken.yaml"), []byte(":\n  - ["), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := NewFileRepository(base)
	list, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 schemas, got %d", len(list))
	}

	s, err := repo.Get("People")
	if err != nil {
		t.Fatal(err)
	}
	cols, err := schema.Resolve(s)
	if err != nil {
		t.Fatal(err)
	}
	if schema.Format(cols) != "first:FirstName,email:Email" {
		t.Fatalf("unexpected columns %q", schema.Format(cols))
	}

	c, err := repo.Get("colors")
	if err != nil {
		t.Fatal(err)
	}
	if c.ID != "colors" || c.Spec != "c:Color,n:Number" {
		t.Fatalf("unexpected schema %#v", c)
	}

	if _, err := repo.Get("nope"); err == nil {
		t.Fatal("expected not found")
	}
}

func TestListMissingDir(t *testing.T) {
	list, err := NewFileRepository(filepath.Join(t.TempDir(), "absent")).List()
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %v, %v", list, err)
	}
}

func TestGetByPath_RejectsPathTraversal(t *testing.T) {
	base := t.TempDir()
	repo := NewFileRepository(base)

	if err := os.WriteFile(filepath.Join(base, "ok.yaml"), []byte("spec: a:Number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := repo.GetByPath("ok.yaml")
	if err != nil {
		t.Fatalf("expected schema load inside base dir, got %v", err)
	}
	if s.ID != "ok" || s.Name != "ok" {
		t.Fatalf("expected id/name from filename, got %#v", s)
	}

	outsideFile := filepath.Join(t.TempDir(), "outside.yaml")
	if err := os.WriteFile(outsideFile, []byte("spec: a:Number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByPath(outsideFile); err == nil {
		t.Fatal("expected traversal rejection for outside absolute path")
	}
	if _, err := repo.GetByPath("../outside.yaml"); err == nil {
		t.Fatal("expected traversal rejection for relative path escape")
	}
}
