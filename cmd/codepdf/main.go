package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/codepdf"
	"github.com/fwojciec/codepdf/chroma"
	"github.com/fwojciec/codepdf/fs"
	"github.com/fwojciec/codepdf/gofpdf"
)

// ErrNotDirectory is returned when the target path is not a directory.
var ErrNotDirectory = errors.New("not a valid directory")

// App encapsulates the application logic for testing.
type App struct {
	Dir      string
	Stdout   io.Writer
	Scanner  codepdf.Scanner
	Renderer codepdf.Renderer
}

// Run scans the folder and writes the styled document into it.
func (a *App) Run() error {
	info, err := os.Stat(a.Dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", a.Dir, ErrNotDirectory)
	}

	fmt.Fprintf(a.Stdout, "Processing folder: %s\n", a.Dir)

	folder, err := a.Scanner.Scan(a.Dir)
	if err != nil {
		return err
	}
	for _, file := range folder.Files {
		fmt.Fprintf(a.Stdout, "  Adding: %s\n", file.Name)
	}

	outPath := filepath.Join(a.Dir, codepdf.OutputName)
	if err := a.Renderer.Render(folder, outPath); err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "\nSaved: %s\n", outPath)
	return nil
}

func main() {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		if dir, err = filepath.Abs(os.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	renderer, err := gofpdf.NewRenderer(chroma.NewTokenizer(), codepdf.Darcula())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := &App{
		Dir:      dir,
		Stdout:   os.Stdout,
		Scanner:  fs.NewScanner(),
		Renderer: renderer,
	}

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
