package utils

import (
	"io"
	rndm "math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Directory Helper ---

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// --- File Save ---

var filenameRe = regexp.MustCompile(`[^\w.\-]`)

// SanitizeFilename strips path components and unsafe characters.
func SanitizeFilename(name string) string {
	clean := filenameRe.ReplaceAllString(filepath.Base(name), "_")
	if clean == "" {
		return "file"
	}
	return clean
}

// SaveFile stores an uploaded file under folder with a unique name and
// returns the saved name.
func SaveFile(file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	if err := EnsureDir(folder); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(SanitizeFilename(header.Filename))
	dst, err := os.Create(filepath.Join(folder, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return name, nil
}
