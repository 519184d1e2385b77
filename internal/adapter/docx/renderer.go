// Package docx renders plain text lines into a Word (.docx) document.
package docx

import (
	"fmt"
	"os"
	"path/filepath"

	"testforge/internal/domain"

	"github.com/gomutex/godocx"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	Extension   = ".docx"

	// headingSizePt is in points; headingSpacingAfter in twentieths of a point (12pt).
	headingSizePt       = 16
	headingSpacingAfter = 240
)

// Renderer builds .docx packages with godocx.
type Renderer struct {
	tempDir string
}

// NewRenderer creates a .docx renderer.
func NewRenderer() *Renderer {
	return &Renderer{tempDir: os.TempDir()}
}

func (r *Renderer) ContentType() string { return ContentType }

func (r *Renderer) Extension() string { return Extension }

// Render writes a bold heading paragraph followed by one paragraph per line.
// Lines are emitted verbatim; empty lines become empty paragraphs.
func (r *Renderer) Render(title string, lines []string) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	heading := doc.AddEmptyParagraph()
	heading.AddText(title).Bold(true).Size(headingSizePt)
	heading.Spacing(0, headingSpacingAfter)

	for _, line := range lines {
		doc.AddParagraph(line)
	}

	dir, err := os.MkdirTemp(r.tempDir, "testforge-docx-*")
	if err != nil {
		return nil, fmt.Errorf("create export workspace: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "export"+Extension)
	if err := doc.SaveTo(path); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return content, nil
}

var _ domain.DocumentRenderer = (*Renderer)(nil)
