package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_IsSkip(t *testing.T) {
	assert.True(t, EventSkipNoMain.IsSkip())
	assert.True(t, EventSkipMainIsIndex.IsSkip())
	assert.True(t, EventSkipAlreadyExists.IsSkip())

	assert.False(t, EventFound.IsSkip())
	assert.False(t, EventCreated.IsSkip())
	assert.False(t, EventDeleted.IsSkip())
	assert.False(t, EventFailed.IsSkip())
}

func TestEvent_Message(t *testing.T) {
	assert.Equal(t, "does not have a main entry.", EventSkipNoMain.Message())
	assert.Equal(t, "main entry is index.js.", EventSkipMainIsIndex.Message())
	assert.Equal(t, "already exists.", EventSkipAlreadyExists.Message())
	assert.Equal(t, "custom", Event("custom").Message())
}

func TestOptions_Merge(t *testing.T) {
	assert.Equal(t, Options{Format: "cjs"}, Options{}.Merge())
	assert.Equal(t, Options{Format: "esm"}, Options{Format: "esm"}.Merge())

	// merging never mutates the defaults
	_ = Options{Format: "esm"}.Merge()
	assert.Equal(t, DefaultFormat, DefaultOptions().Format)
}
