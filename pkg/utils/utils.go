package utils

import (
	"crypto/rand"
	"errors"
	"math"
	"mime/multipart"
	"strings"
	"time"
	"unicode"

	"github.com/oklog/ulid/v2"
)

const wordsPerMinute = 200

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	GenerateSlug(title string) string
	CalculateReadingTime(content string) int
	ValidateImageFile(file *multipart.FileHeader) error
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// GenerateSlug lowercases the title and collapses every run of
// non-alphanumeric characters into a single hyphen. Uniqueness is not
// enforced here; the blogs.slug unique index rejects collisions.
func (u *utils) GenerateSlug(title string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// CalculateReadingTime estimates minutes at 200 words per minute.
// Empty content yields 0.
func (u *utils) CalculateReadingTime(content string) int {
	words := len(strings.Fields(content))
	return int(math.Ceil(float64(words) / float64(wordsPerMinute)))
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxFileSize {
		return errors.New("file size exceeds limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return errors.New("uploaded file is not an image")
	}

	return nil
}
