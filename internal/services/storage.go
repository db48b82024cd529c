package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidUpload = errors.New("invalid upload")

type StorageService interface {
	EnsureTempDir() error
	ReadUpload(file *multipart.FileHeader) ([]byte, error)
	WithTempFile(data []byte, suffix string, fn func(path string) error) error
}

type storageService struct {
	tempDir     string
	maxFileSize int64
}

func NewStorageService(tempDir string, maxFileSize int64) StorageService {
	return &storageService{
		tempDir:     tempDir,
		maxFileSize: maxFileSize,
	}
}

func (s *storageService) EnsureTempDir() error {
	if err := os.MkdirAll(s.tempDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	return nil
}

// ReadUpload validates a multipart resume and returns its bytes.
func (s *storageService) ReadUpload(file *multipart.FileHeader) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return nil, fmt.Errorf("%w: invalid file extension: %q", ErrInvalidUpload, ext)
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: file too large, max size: %d bytes", ErrInvalidUpload, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, nil
}

// WithTempFile writes data to a private temp file, hands its path to fn and
// removes the file on every exit path, including a panic inside fn.
func (s *storageService) WithTempFile(data []byte, suffix string, fn func(path string) error) error {
	dst, err := os.CreateTemp(s.tempDir, "resume-*"+suffix)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	path := dst.Name()
	defer os.Remove(path)

	if _, err := dst.Write(data); err != nil {
		dst.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	return fn(path)
}
