package fileutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

func TestWriteFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "out.rtf")
	content := []byte("{\\rtf1\\ansi Hello}")

	if err := WriteFile(path, content); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("content mismatch: got %q, want %q", got, content)
	}
}

func TestWriteFile_CreatesDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "deep", "out.rtf")

	if err := WriteFile(path, []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestWriteFile_NoTempLeftover(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "out.rtf")

	if err := WriteFile(path, []byte("data")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteFileXZ(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "out.rtf.xz")
	content := []byte("{\\rtf1\\ansi compressed content}")

	if err := WriteFileXZ(path, content); err != nil {
		t.Fatalf("WriteFileXZ failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		t.Fatalf("xz reader failed: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decompress failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("decompressed mismatch: got %q, want %q", got, content)
	}
}
