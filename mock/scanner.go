package mock

import "github.com/fwojciec/codepdf"

// Compile-time interface verification.
var _ codepdf.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of codepdf.Scanner.
type Scanner struct {
	ScanFn func(dir string) (*codepdf.Folder, error)
}

func (s *Scanner) Scan(dir string) (*codepdf.Folder, error) {
	return s.ScanFn(dir)
}
