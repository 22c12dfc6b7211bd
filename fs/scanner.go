// Package fs scans directories for the files and images to render.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/fwojciec/codepdf"
)

// Compile-time interface verification.
var _ codepdf.Scanner = (*Scanner)(nil)

// probeSize bounds how much of a file the binary probe inspects.
const probeSize = 1024

// Scanner lists folder contents, using enry to classify entries.
type Scanner struct{}

// NewScanner creates a new filesystem scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads dir and returns its files and images sorted by name. Hidden
// entries, directories, and previously generated PDFs are skipped. A read
// failure for an individual file is recorded on the File so the caller can
// render a placeholder and keep going.
func (s *Scanner) Scan(dir string) (*codepdf.Folder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	folder := &codepdf.Folder{Dir: dir}
	for _, entry := range entries {
		name := entry.Name()
		if enry.IsDotFile(name) {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), filepath.Ext(codepdf.OutputName)) {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, name)
		if enry.IsImage(name) {
			folder.Images = append(folder.Images, codepdf.Image{Name: name, Path: path})
			continue
		}
		folder.Files = append(folder.Files, readFile(name, path))
	}
	return folder, nil
}

func readFile(name, path string) codepdf.File {
	data, err := os.ReadFile(path)
	if err != nil {
		return codepdf.File{Name: name, ReadErr: err}
	}

	probe := data
	if len(probe) > probeSize {
		probe = probe[:probeSize]
	}
	if enry.IsBinary(probe) {
		return codepdf.File{Name: name, Binary: true}
	}

	return codepdf.File{Name: name, Content: strings.ToValidUTF8(string(data), "�")}
}
