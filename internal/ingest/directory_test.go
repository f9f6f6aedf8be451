package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanDirectoryFiltersAndCounts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.pdf"))
	writeFile(t, filepath.Join(root, "notas.txt"))
	writeFile(t, filepath.Join(root, ".oculto.pdf"))
	writeFile(t, filepath.Join(root, "sub", "b.PDF"))

	results, stats, err := ScanDirectory(root, nil, true)
	if err != nil {
		t.Fatalf("ScanDirectory: %v", err)
	}
	if stats.Matched != 2 {
		t.Fatalf("matched: got %d, want 2", stats.Matched)
	}
	if len(results) != 2 {
		t.Fatalf("results: got %d, want 2", len(results))
	}
	for _, r := range results {
		if r.FileID == "" {
			t.Fatalf("file %s should get an ID", r.Path)
		}
		if r.Err != "" {
			t.Fatalf("unexpected error for %s: %s", r.Path, r.Err)
		}
	}
}

func TestScanDirectoryHiddenKeptWhenRequested(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".oculto.pdf"))

	_, stats, err := ScanDirectory(root, []string{".pdf"}, false)
	if err != nil {
		t.Fatalf("ScanDirectory: %v", err)
	}
	if stats.Matched != 1 {
		t.Fatalf("matched: got %d, want 1", stats.Matched)
	}
}

func TestScanDirectoryRequiresRoot(t *testing.T) {
	if _, _, err := ScanDirectory("  ", nil, true); err == nil {
		t.Fatal("expected error for blank root")
	}
}
