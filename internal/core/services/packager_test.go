package services

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodhamgupta/ex-vespa/internal/core/domain"
)

// TestWritePackage_Layout tests the on-disk artifact tree
func TestWritePackage_Layout(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "pkg")

	err = WritePackage(app, dir)

	require.NoError(t, err)
	for _, path := range []string{
		"services.xml",
		"validation-overrides.xml",
		"schemas/my_app.sd",
		"search/query-profiles/default.xml",
		"search/query-profiles/types/root.xml",
	} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(path)))
	}
}

// TestWritePackage_MatchesRendering tests that written files are
// byte-identical to the in-memory rendering
func TestWritePackage_MatchesRendering(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, WritePackage(app, dir))

	onDisk, err := os.ReadFile(filepath.Join(dir, "services.xml"))
	require.NoError(t, err)
	assert.Equal(t, CompileServices(app), string(onDisk))

	schema, err := app.GetSchema("")
	require.NoError(t, err)
	onDisk, err = os.ReadFile(filepath.Join(dir, "schemas", "my_app.sd"))
	require.NoError(t, err)
	assert.Equal(t, CompileSchema(schema), string(onDisk))
}

// TestZipPackage_RoundTrip tests that re-extracting the archive yields
// byte-identical artifacts to the direct rendering
func TestZipPackage_RoundTrip(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)

	data, err := ZipPackage(app)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	extracted := map[string]string{}
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		extracted[f.Name] = string(content)
	}

	schema, err := app.GetSchema("")
	require.NoError(t, err)
	assert.Equal(t, CompileServices(app), extracted["services.xml"])
	assert.Equal(t, CompileValidationOverrides(app), extracted["validation-overrides.xml"])
	assert.Equal(t, CompileSchema(schema), extracted["schemas/my_app.sd"])
	assert.Len(t, extracted, 5)
}

// TestZipPackage_MissingModelFile tests that a dangling model reference
// aborts packaging
func TestZipPackage_MissingModelFile(t *testing.T) {
	m, err := domain.NewOnnxModel("ranker", filepath.Join(t.TempDir(), "absent.onnx"), nil, nil)
	require.NoError(t, err)
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)
	schema, err := app.GetSchema("")
	require.NoError(t, err)
	app = app.AddSchema(schema.AddModel(m))

	_, err = ZipPackage(app)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ranker")
}

// TestZipPackage_IncludesModelFile tests that referenced model bytes
// land under files/
func TestZipPackage_IncludesModelFile(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "ranker.onnx")
	require.NoError(t, os.WriteFile(modelPath, []byte("onnx-bytes"), 0o644))
	m, err := domain.NewOnnxModel("ranker", modelPath, nil, nil)
	require.NoError(t, err)
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)
	schema, err := app.GetSchema("")
	require.NoError(t, err)
	app = app.AddSchema(schema.AddModel(m))

	data, err := ZipPackage(app)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var found bool
	for _, f := range reader.File {
		if f.Name == "files/ranker.onnx" {
			found = true
			rc, err := f.Open()
			require.NoError(t, err)
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			rc.Close()
			assert.Equal(t, "onnx-bytes", string(content))
		}
	}
	assert.True(t, found, "files/ranker.onnx missing from archive")
}

// TestZipDir_ArchivesExistingTree tests archiving a materialized
// package directory
func TestZipDir_ArchivesExistingTree(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, WritePackage(app, dir))

	data, err := ZipDir(dir)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, 0, len(reader.File))
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "services.xml")
	assert.Contains(t, names, "schemas/my_app.sd")
}

// TestWriteZip_DefaultName tests the default archive name
func TestWriteZip_DefaultName(t *testing.T) {
	app, err := domain.NewApplicationPackage("my_app")
	require.NoError(t, err)
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	require.NoError(t, WriteZip(app, ""))

	assert.FileExists(t, filepath.Join(dir, DefaultArchiveName))
}
