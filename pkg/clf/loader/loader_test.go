package loader_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colour-pipeline/go-clf/pkg/clf"
	"github.com/colour-pipeline/go-clf/pkg/clf/loader"
)

func writeDoc(t *testing.T, dir, name, id string) string {
	t.Helper()

	doc := fmt.Sprintf(`<?xml version="1.0" ?>
<ProcessList id=%q compCLFversion="3.0" xmlns="urn:AMPAS:CLF:v3.0">
    <Log id="l" inBitDepth="32f" outBitDepth="32f" style="log10"/>
</ProcessList>`, id)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "a.clf", "doc-a")

	pl, err := loader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "doc-a", pl.ID)
	assert.Len(t, pl.Nodes, 1)
}

func TestReadFileMissing(t *testing.T) {
	_, err := loader.ReadFile(filepath.Join(t.TempDir(), "nope.clf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.clf")
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()

	paths := make([]string, 5)
	for i := range paths {
		paths[i] = writeDoc(t, dir, fmt.Sprintf("doc-%d.clf", i), fmt.Sprintf("doc-%d", i))
	}

	lists, err := loader.ReadFiles(context.Background(), paths, 2)
	require.NoError(t, err)
	require.Len(t, lists, 5)

	// Results keep the order of the input paths.
	for i, pl := range lists {
		assert.Equal(t, fmt.Sprintf("doc-%d", i), pl.ID)
	}
}

func TestReadFilesFailsFast(t *testing.T) {
	dir := t.TempDir()

	good := writeDoc(t, dir, "good.clf", "good")
	bad := filepath.Join(dir, "bad.clf")
	require.NoError(t, os.WriteFile(bad, []byte(`<ProcessList id="b" compCLFversion="9.9"/>`), 0o600))

	_, err := loader.ReadFiles(context.Background(), []string{good, bad}, 0)

	versionErr := &clf.UnsupportedVersionError{}
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, "9.9", versionErr.Version)
}

func TestReadFilesEmpty(t *testing.T) {
	lists, err := loader.ReadFiles(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, lists)
}
