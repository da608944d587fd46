package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFile_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	src := NewFile(path)
	if src.String() != path {
		t.Errorf("String() = %q, want %q", src.String(), path)
	}

	rc, err := src.Open()
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("contents = %q", data)
	}
}

func TestFile_OpenMissing(t *testing.T) {
	src := NewFile(filepath.Join(t.TempDir(), "ghost.csv"))
	if _, err := src.Open(); err == nil {
		t.Error("Open() should fail for a missing file")
	}
}

func TestReader_OpenIsFresh(t *testing.T) {
	src := NewReader("buf", "hello")

	for i := 0; i < 2; i++ {
		rc, err := src.Open()
		if err != nil {
			t.Fatalf("Open() error: %v", err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		if string(data) != "hello" {
			t.Errorf("open %d contents = %q, want full data", i, data)
		}
	}
}

func TestStdin_String(t *testing.T) {
	src := &Stdin{}
	if src.String() != "stdin" {
		t.Errorf("String() = %q", src.String())
	}
}
