package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneWriterOpensOnce(t *testing.T) {
	dir := t.TempDir()
	var slot *os.File
	defer closeAll([]*os.File{slot})

	f1, err := planeWriter(&slot, dir, "clip", 0)
	require.NoError(t, err)
	f2, err := planeWriter(&slot, dir, "clip", 0)
	require.NoError(t, err)
	assert.Same(t, f1, f2, "planeWriter opened a second file for the same plane")

	_, err = os.Stat(filepath.Join(dir, "clip.y"))
	assert.NoError(t, err, "expected clip.y to exist")
}

func TestTrackWriterOpensOncePerTrack(t *testing.T) {
	dir := t.TempDir()
	files := map[int]*os.File{}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	f1, err := trackWriter(files, dir, "clip", 0)
	require.NoError(t, err)
	f2, err := trackWriter(files, dir, "clip", 0)
	require.NoError(t, err)
	assert.Same(t, f1, f2, "trackWriter opened a second file for the same track")

	f3, err := trackWriter(files, dir, "clip", 1)
	require.NoError(t, err)
	assert.NotSame(t, f1, f3, "trackWriter returned the same file for two different tracks")
}
