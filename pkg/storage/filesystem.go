package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Downloads persists exported and downloaded files under a base directory.
type Downloads struct {
	baseDir string
}

// NewDownloads ensures the base directory exists and returns a handle.
func NewDownloads(baseDir string) (*Downloads, error) {
	if baseDir == "" {
		baseDir = "./downloads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create downloads directory: %w", err)
	}
	return &Downloads{baseDir: baseDir}, nil
}

// Save writes data under filename and returns the full path.
func (s *Downloads) Save(filename string, data []byte) (string, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write download: %w", err)
	}
	return path, nil
}

// SaveStream copies from r into filename and returns the full path.
func (s *Downloads) SaveStream(filename string, r io.Reader) (string, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return "", err
	}
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create download: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write download stream: %w", err)
	}
	return path, nil
}

// Dir returns the base directory.
func (s *Downloads) Dir() string {
	return s.baseDir
}

// resolve keeps server-suggested names inside baseDir.
func (s *Downloads) resolve(filename string) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid download filename %q", filename)
	}
	return filepath.Join(s.baseDir, name), nil
}
