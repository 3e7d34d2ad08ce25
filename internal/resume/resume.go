// Package resume loads resume free text from local storage.
package resume

import (
	"fmt"
	"os"
)

// File reads a plain-text resume from the filesystem. It satisfies the
// match.ResumeSource contract.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Load() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading resume %q: %w", f.Path, err)
	}
	return string(data), nil
}
