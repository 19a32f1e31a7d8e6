package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

func AllowedImage(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

var unsafeFilenameChars = strings.NewReplacer(
	"/", "_", "\\", "_", " ", "_", ":", "_", "*", "_",
	"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
)

// SanitizeFilename strips any path components and replaces characters that
// are unsafe in a stored filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.Replace(name)
	return strings.Trim(name, "._")
}

// SaveEventImage stores an uploaded image under dir with a nanosecond
// timestamp prefix to avoid filename collisions, returning the generated
// filename that gets persisted on the event.
func SaveEventImage(file *multipart.FileHeader, dir string) (string, error) {
	if !AllowedImage(file.Filename) {
		return "", fmt.Errorf("invalid image format: allowed png, jpg, jpeg, gif")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), SanitizeFilename(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return filename, nil
}
