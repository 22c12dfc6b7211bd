// Package codepdf provides domain types for exporting a folder of source
// files as a single styled PDF document.
package codepdf

// OutputName is the fixed file name of the generated document, written into
// the processed folder. Files with the same extension are excluded from
// processing so a previous run's output is never re-exported.
const OutputName = "project_files.pdf"

// Token is a (category, text) unit produced by lexical analysis. Category is
// a dot-separated hierarchical tag from most general to most specific
// ("Keyword", "Name.Function"). Text may contain newlines.
type Token struct {
	Category string
	Text     string
}

// Span is a single-line fragment of a Token's text paired with its category.
// The text never contains a newline character.
type Span struct {
	Category string
	Text     string
}

// Line is an ordered list of Spans representing one visual row of styled
// text. An empty Line represents a blank row.
type Line []Span

// File is one regular, non-image entry of a scanned folder.
type File struct {
	Name    string // base name within the folder
	Binary  bool   // true if the content probe found a zero byte
	Content string // raw text; empty for binary or unreadable files
	ReadErr error  // non-nil if the file could not be read
}

// Image is one image entry of a scanned folder, identified by extension.
type Image struct {
	Name string // base name, used as the caption
	Path string // full path for loading
}

// Folder is the scanned content of one directory, ordered by name.
type Folder struct {
	Dir    string
	Files  []File
	Images []Image
}

// Tokenizer extracts categorized tokens from source text.
type Tokenizer interface {
	// Tokenize splits source into tokens, using filename to guess the
	// language. Returns nil if tokenization failed; callers should fall
	// back to rendering the source unstyled. Concatenating the returned
	// token texts reproduces source exactly.
	Tokenize(filename, source string) []Token
}

// Scanner lists the renderable contents of a directory.
type Scanner interface {
	// Scan reads dir and returns its files and images sorted by name.
	// Hidden entries and previously generated output are excluded.
	// Per-file read failures are recorded on the File, not returned.
	Scan(dir string) (*Folder, error)
}

// Renderer produces the styled output document for a scanned folder.
type Renderer interface {
	// Render writes the document for folder to outPath. Per-file styling
	// problems degrade to plain text; only a write failure is an error.
	Render(folder *Folder, outPath string) error
}
