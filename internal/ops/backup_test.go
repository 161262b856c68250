package ops

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatalf("mkdir src: %v", err)
	}
	for rel, content := range files {
		path := filepath.Join(src, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir parent %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return src
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	files := map[string]string{
		"sessions.json":      `{"recordsById":{"4f2d":{"id":"4f2d","token":"tok","role":"owner"}}}`,
		"events/events.json": `[{"id":1,"type":"page_view"}]`,
	}
	src := writeDataDir(t, files)

	archive := filepath.Join(t.TempDir(), "backup.tar.gz")
	info, err := Snapshot(src, archive)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if info.Files != 2 {
		t.Fatalf("expected 2 files in the archive, got %d", info.Files)
	}
	if info.Sessions != 1 {
		t.Fatalf("expected 1 session record counted, got %d", info.Sessions)
	}

	restoreDir := filepath.Join(t.TempDir(), "restore")
	if err := Restore(archive, restoreDir); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	got := map[string]string{}
	err = filepath.WalkDir(restoreDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(restoreDir, path)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		got[filepath.ToSlash(rel)] = string(b)
		return nil
	})
	if err != nil {
		t.Fatalf("walk restore dir: %v", err)
	}

	if !reflect.DeepEqual(files, got) {
		t.Fatalf("restored files mismatch:\nwant=%v\ngot=%v", files, got)
	}
}

func TestSnapshot_EmptyDataDirIsValid(t *testing.T) {
	// A fresh install has no session document yet; backing it up still works.
	src := writeDataDir(t, nil)

	info, err := Snapshot(src, filepath.Join(t.TempDir(), "empty.tar.gz"))
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if info.Files != 0 || info.Sessions != 0 {
		t.Fatalf("expected an empty snapshot, got %+v", info)
	}
}

func TestSnapshot_RejectsCorruptSessionDocument(t *testing.T) {
	src := writeDataDir(t, map[string]string{
		"sessions.json": `{"recordsById": not-json`,
	})

	if _, err := Snapshot(src, filepath.Join(t.TempDir(), "bad.tar.gz")); err == nil {
		t.Fatal("expected verification to reject a corrupt session document")
	}
}

func TestRestore_RejectsPathTraversal(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "bad.tar.gz")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	if err := tw.WriteHeader(&tar.Header{
		Name:     "../escape.txt",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len("bad")),
	}); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if _, err := tw.Write([]byte("bad")); err != nil {
		t.Fatalf("write body: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	if err := Restore(archive, filepath.Join(t.TempDir(), "out")); err == nil {
		t.Fatalf("expected restore to reject path traversal archive")
	}
}
