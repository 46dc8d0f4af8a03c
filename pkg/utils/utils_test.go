package utils

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	u := New()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation collapses", "Hello, World!", "hello-world"},
		{"multiple separators", "Go  --  Rocks", "go-rocks"},
		{"trailing separators trimmed", "Trailing dots...", "trailing-dots"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"already clean", "clean-slug", "clean-slug"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, u.GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	u := New()
	title := "Same Title Every Time"
	assert.Equal(t, u.GenerateSlug(title), u.GenerateSlug(title))
}

func TestCalculateReadingTime(t *testing.T) {
	u := New()

	assert.Equal(t, 0, u.CalculateReadingTime(""))
	assert.Equal(t, 1, u.CalculateReadingTime("one"))
	assert.Equal(t, 1, u.CalculateReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, u.CalculateReadingTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 3, u.CalculateReadingTime(strings.Repeat("word ", 500)))
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func newFileHeader(size int64, contentType string) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "upload.png",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	assert.Error(t, u.ValidateImageFile(nil))
	assert.NoError(t, u.ValidateImageFile(newFileHeader(1024, "image/png")))
	assert.NoError(t, u.ValidateImageFile(newFileHeader(5*1024*1024, "image/jpeg")))
	assert.Error(t, u.ValidateImageFile(newFileHeader(5*1024*1024+1, "image/png")))
	assert.Error(t, u.ValidateImageFile(newFileHeader(1024, "text/plain")))
}
