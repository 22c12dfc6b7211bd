package mock

import "github.com/fwojciec/codepdf"

// Compile-time interface verification.
var _ codepdf.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of codepdf.Renderer.
type Renderer struct {
	RenderFn func(folder *codepdf.Folder, outPath string) error
}

func (r *Renderer) Render(folder *codepdf.Folder, outPath string) error {
	return r.RenderFn(folder, outPath)
}
