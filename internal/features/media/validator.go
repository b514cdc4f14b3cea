package media

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	// AllowedImageTypes mirrors the capture control's image/* filter.
	AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif"}

	// MaxPhotoSize bounds the raw upload; the normalizer bounds the output.
	MaxPhotoSize = int64(10 * 1024 * 1024) // 10MB
)

// ValidatePhotoFile validates an image file upload
func ValidatePhotoFile(header *multipart.FileHeader) error {
	if header.Size > MaxPhotoSize {
		return fmt.Errorf("image file size exceeds maximum allowed size of %d MB", MaxPhotoSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range AllowedImageTypes {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid image file type: %s. Allowed types: %s", ext, strings.Join(AllowedImageTypes, ", "))
}
