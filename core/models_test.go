package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}

	assert.False(t, Category("reminder").Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("Task").Valid(), "categories are case sensitive")
}

func TestFileOutcome(t *testing.T) {
	text := "hello"
	success := SuccessOutcome(text, &Attachment{Modality: ModalityImage})
	assert.False(t, success.Failed())
	assert.Equal(t, text, success.Text)
	assert.Nil(t, success.Failure)

	failure := FailureOutcome("bad.png", "upload refused")
	assert.True(t, failure.Failed())
	assert.Nil(t, failure.Attachment)
	assert.Equal(t, "bad.png", failure.Failure.Filename)
	assert.Equal(t, "upload refused", failure.Failure.Message)
}

func TestRawFileBytes(t *testing.T) {
	t.Run("buffered", func(t *testing.T) {
		f := RawFile{Name: "buf.png", Data: []byte{1, 2, 3}}
		data, err := f.Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, data)
	})

	t.Run("on disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "voice.webm")
		require.NoError(t, os.WriteFile(path, []byte("audio-bytes"), 0o644))

		f := RawFile{Name: "voice.webm", Path: path}
		data, err := f.Bytes()
		require.NoError(t, err)
		assert.Equal(t, []byte("audio-bytes"), data)
	})
}

func TestBundleDiscard(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "a.jpg")
	audPath := filepath.Join(dir, "b.webm")
	require.NoError(t, os.WriteFile(imgPath, []byte("img"), 0o644))
	require.NoError(t, os.WriteFile(audPath, []byte("aud"), 0o644))

	bundle := &InputBundle{
		Text:   "note",
		Images: []RawFile{{Name: "a.jpg", Path: imgPath}},
		Audio:  []RawFile{{Name: "b.webm", Path: audPath}, {Name: "buffered", Data: []byte{1}}},
	}

	require.NoError(t, bundle.Discard())

	_, err := os.Stat(imgPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(audPath)
	assert.True(t, os.IsNotExist(err))

	// Discarding again only fails for paths that existed before.
	assert.Error(t, bundle.Discard())
}
