package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
	"github.com/goodhamgupta/ex-vespa/internal/logger"
)

// DefaultArchiveName is the archive file name used when the caller does
// not pick one.
const DefaultArchiveName = "vespa.zip"

// fileEntry is one file of the packaged application tree. Paths use
// forward slashes; they double as zip entry names.
type fileEntry struct {
	path string
	data []byte
}

// packageFiles renders every artifact of the package into its in-tree
// location. ONNX model files referenced by any schema are read from disk
// and placed under files/.
func packageFiles(app domain.ApplicationPackage) ([]fileEntry, error) {
	entries := []fileEntry{
		{path: "services.xml", data: []byte(CompileServices(app))},
		{path: "validation-overrides.xml", data: []byte(CompileValidationOverrides(app))},
	}
	for _, schema := range app.Schemas.Values() {
		entries = append(entries, fileEntry{
			path: "schemas/" + schema.Name + ".sd",
			data: []byte(CompileSchema(schema)),
		})
		for _, m := range schema.Models {
			model, err := os.ReadFile(m.ModelFilePath)
			if err != nil {
				return nil, fmt.Errorf("read onnx model %s: %w", m.ModelName, err)
			}
			entries = append(entries, fileEntry{path: m.FilePath, data: model})
		}
	}
	if app.QueryProfile != nil {
		entries = append(entries, fileEntry{
			path: "search/query-profiles/default.xml",
			data: []byte(CompileQueryProfile(*app.QueryProfile)),
		})
	}
	if app.QueryProfileType != nil {
		entries = append(entries, fileEntry{
			path: "search/query-profiles/types/root.xml",
			data: []byte(CompileQueryProfileType(*app.QueryProfileType)),
		})
	}
	return entries, nil
}

// WritePackage materializes the package's artifact tree under dir.
// Directory-creation failure is fatal and aborts packaging.
func WritePackage(app domain.ApplicationPackage, dir string) error {
	entries, err := packageFiles(app)
	if err != nil {
		return err
	}
	for _, e := range entries {
		target := filepath.Join(dir, filepath.FromSlash(e.path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create package directory: %w", err)
		}
		if err := os.WriteFile(target, e.data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", e.path, err)
		}
		logger.Debug("Wrote %s (%d bytes)", target, len(e.data))
	}
	return nil
}

// ZipPackage renders the package and archives the artifact tree
// in memory.
func ZipPackage(app domain.ApplicationPackage) ([]byte, error) {
	entries, err := packageFiles(app)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		f, err := zw.Create(e.path)
		if err != nil {
			return nil, fmt.Errorf("archive %s: %w", e.path, err)
		}
		if _, err := f.Write(e.data); err != nil {
			return nil, fmt.Errorf("archive %s: %w", e.path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteZip renders the package and writes the archive to path. An empty
// path defaults to DefaultArchiveName in the working directory.
func WriteZip(app domain.ApplicationPackage, path string) error {
	if path == "" {
		path = DefaultArchiveName
	}
	data, err := ZipPackage(app)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	logger.Info("Wrote %s (%d bytes)", path, len(data))
	return nil
}

// ZipDir archives an already materialized package directory. Entry names
// are relative to dir, forward-slashed.
func ZipDir(dir string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", dir, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
