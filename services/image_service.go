package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"stayhub/apperrors"

	"github.com/google/uuid"
)

type IImageService interface {
	Save(file *multipart.FileHeader) (url string, filename string, err error)
	Remove(filename string) error
}

// ImageService writes uploaded listing images to a local directory and
// serves them back under /uploads. Stored names are random UUIDs so user
// supplied filenames never reach the filesystem.
type ImageService struct {
	dir string
}

func NewImageService(dir string) IImageService {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic("Failed to create upload directory")
	}
	return &ImageService{dir: dir}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func (s *ImageService) Save(file *multipart.FileHeader) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", "", apperrors.ErrUnsupportedImage
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", err
	}
	return "/uploads/" + filename, filename, nil
}

func (s *ImageService) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
