// Package ops snapshots and restores the site's data directory, which holds
// the session store's JSON files. A snapshot is only reported successful after
// the written archive has been re-read and the session document inside it
// parsed, so a backup that would not restore fails loudly at backup time.
package ops

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const sessionFile = "sessions.json"

// SnapshotInfo summarizes a verified snapshot.
type SnapshotInfo struct {
	Archive  string
	Files    int
	Sessions int
}

// sessionDocument mirrors the session store's on-disk shape just enough to
// count records during verification.
type sessionDocument struct {
	RecordsByID map[string]json.RawMessage `json:"recordsById"`
}

// Snapshot archives srcDir into a tar.gz at archivePath, then verifies the
// archive by reading it back. A data dir without a session document yet is a
// valid (empty) snapshot; a corrupt session document is not.
func Snapshot(srcDir, archivePath string) (*SnapshotInfo, error) {
	srcDir = filepath.Clean(strings.TrimSpace(srcDir))
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	if srcDir == "" || archivePath == "" {
		return nil, fmt.Errorf("srcDir and archivePath are required")
	}
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source is not a directory: %s", srcDir)
	}
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return nil, err
	}

	if err := writeArchive(srcDir, archivePath); err != nil {
		return nil, err
	}
	files, sessions, err := verifyArchive(archivePath)
	if err != nil {
		return nil, fmt.Errorf("snapshot written but failed verification: %w", err)
	}
	return &SnapshotInfo{Archive: archivePath, Files: files, Sessions: sessions}, nil
}

func writeArchive(srcDir, archivePath string) error {
	f, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == srcDir {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.Type()&os.ModeSymlink != 0 {
			// Skip symlinks for predictable backup/restore.
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if info.IsDir() && !strings.HasSuffix(hdr.Name, "/") {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(tw, src)
		return err
	})
}

// verifyArchive walks the finished archive, rejecting unsafe entry paths and
// parsing the session document when present.
func verifyArchive(archivePath string) (files, sessions int, err error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return 0, 0, err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, err
		}
		rel, err := sanitizeArchiveRelPath(hdr.Name)
		if err != nil {
			return 0, 0, err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		files++
		if rel != sessionFile {
			continue
		}
		b, err := io.ReadAll(tr)
		if err != nil {
			return 0, 0, err
		}
		var doc sessionDocument
		if err := json.Unmarshal(b, &doc); err != nil {
			return 0, 0, fmt.Errorf("session document in archive is corrupt: %w", err)
		}
		sessions = len(doc.RecordsByID)
	}
	return files, sessions, nil
}

// Restore unpacks a snapshot into targetDir, refusing entries whose paths
// would escape it.
func Restore(archivePath, targetDir string) error {
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	targetDir = filepath.Clean(strings.TrimSpace(targetDir))
	if archivePath == "" || targetDir == "" {
		return fmt.Errorf("archivePath and targetDir are required")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		rel, err := sanitizeArchiveRelPath(hdr.Name)
		if err != nil {
			return err
		}
		outPath := filepath.Join(targetDir, rel)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(outPath, os.FileMode(hdr.Mode)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return err
			}
			dst, err := os.OpenFile(outPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(dst, tr); err != nil {
				_ = dst.Close()
				return err
			}
			if err := dst.Close(); err != nil {
				return err
			}
		default:
			// Ignore unsupported entry types.
		}
	}

	return nil
}

func sanitizeArchiveRelPath(name string) (string, error) {
	name = filepath.Clean(strings.TrimSpace(name))
	if name == "." || name == "" {
		return "", fmt.Errorf("invalid archive entry path")
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid absolute archive entry path: %s", name)
	}
	if strings.HasPrefix(name, ".."+string(filepath.Separator)) || name == ".." {
		return "", fmt.Errorf("invalid archive entry path traversal: %s", name)
	}
	return name, nil
}
