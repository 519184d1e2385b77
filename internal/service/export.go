package service

import (
	"context"
	"strings"

	"testforge/internal/config"
	"testforge/internal/domain"
	"testforge/internal/dto"
	"testforge/internal/logger"
	"testforge/internal/util"
	"testforge/internal/validation"

	"go.uber.org/zap"
)

const (
	DefaultExportHeading = "TestForge Quiz Export"
	DefaultExportSlug    = "testforge-quiz"

	nothingToExportMessage = "Nothing to export."
)

// ExportResult is a rendered document ready to be streamed to the client.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService converts quiz text into a downloadable document.
type ExportService interface {
	Export(ctx context.Context, req *dto.ExportRequest) (*ExportResult, error)
}

type exportService struct {
	renderer    domain.DocumentRenderer
	heading     string
	defaultSlug string
}

// NewExportService creates an ExportService using renderer.
func NewExportService(renderer domain.DocumentRenderer, cfg config.ExportConfig) ExportService {
	heading := cfg.Heading
	if heading == "" {
		heading = DefaultExportHeading
	}
	slug := util.Slugify(cfg.DefaultSlug)
	if slug == "" {
		slug = DefaultExportSlug
	}
	return &exportService{
		renderer:    renderer,
		heading:     heading,
		defaultSlug: slug,
	}
}

// SplitLines normalizes CRLF and lone CR line endings and splits text into lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Export renders each line of req.OutputText as its own paragraph under a
// fixed heading. Quiz structure is not inspected.
func (s *exportService) Export(_ context.Context, req *dto.ExportRequest) (*ExportResult, error) {
	if req == nil || strings.TrimSpace(req.OutputText) == "" {
		return nil, domain.NewExportError(nothingToExportMessage)
	}

	lines := SplitLines(req.OutputText)
	content, err := s.renderer.Render(s.heading, lines)
	if err != nil {
		return nil, domain.NewInternalError("Export failed", err)
	}

	filename := util.SlugOrDefault(validation.CoerceString(req.Filename), s.defaultSlug) + s.renderer.Extension()
	logger.Get().Info("Quiz exported",
		zap.String("filename", filename),
		zap.Int("lines", len(lines)),
		zap.Int("bytes", len(content)),
	)

	return &ExportResult{
		Filename:    filename,
		ContentType: s.renderer.ContentType(),
		Content:     content,
	}, nil
}
