package filemgr

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// EntityType selects the upload subdirectory.
type EntityType string

const (
	EntityProduct EntityType = "product"
	EntityBanner  EntityType = "banner"
)

const thumbWidth = 300

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SaveFormFile stores an uploaded image under static/uploads/<entity>/
// with a random filename and writes a width-bounded thumbnail next to
// it under thumb/. It returns the public path of the full-size image.
func SaveFormFile(form *multipart.Form, field string, entity EntityType) (string, error) {
	files := form.File[field]
	if len(files) == 0 {
		return "", nil
	}
	header := files[0]

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join("static", "uploads", string(entity))
	if err := os.MkdirAll(filepath.Join(dir, "thumb"), 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	fullPath := filepath.Join(dir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("write file: %w", err)
	}
	dst.Close()

	if err := writeThumbnail(fullPath, filepath.Join(dir, "thumb", name)); err != nil {
		// Thumbnail failure is not fatal; the full image is already saved.
		log.Printf("Thumbnail generation failed for %s: %v", name, err)
	}

	return "/static/uploads/" + string(entity) + "/" + name, nil
}

func writeThumbnail(srcPath, dstPath string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return err
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	return imaging.Save(thumb, dstPath)
}
