package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType identifies a supported document format.
type FileType string

// Supported document formats.
const (
	FileTypeEPUB FileType = "epub"
	FileTypePDF  FileType = "pdf"
	FileTypeTXT  FileType = "txt"
)

// IsValid returns true if the file type is recognised.
func (t FileType) IsValid() bool {
	switch t {
	case FileTypeEPUB, FileTypePDF, FileTypeTXT:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t FileType) String() string {
	return string(t)
}

// Extension returns the file extension for this type, including the dot.
func (t FileType) Extension() string {
	return "." + string(t)
}

// HasChapters returns true if the format carries a chapter structure.
// Only EPUB does; PDF and TXT documents are a single run of content.
func (t FileType) HasChapters() bool {
	return t == FileTypeEPUB
}

// AllFileTypes returns all supported formats.
func AllFileTypes() []FileType {
	return []FileType{FileTypeEPUB, FileTypePDF, FileTypeTXT}
}

// FileTypeFromPath derives the file type from a path's extension,
// case-insensitively. A missing or unrecognised extension is a permanent
// failure, reported as ErrUnsupportedFormat.
func FileTypeFromPath(path string) (FileType, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", fmt.Errorf("%q has no file extension: %w", path, ErrUnsupportedFormat)
	}

	t := FileType(ext)
	if !t.IsValid() {
		return "", fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
	return t, nil
}
