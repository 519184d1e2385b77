package handler

import (
	"context"
	"fmt"

	"testforge/internal/domain"
	"testforge/internal/dto"
	"testforge/internal/logger"
	"testforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// QuizHandler serves quiz generation, export and usage statistics.
type QuizHandler struct {
	quizService   service.QuizService
	exportService service.ExportService
	usageService  service.UsageService
	counterPinger Pinger
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, exportService service.ExportService, usageService service.UsageService) *QuizHandler {
	return &QuizHandler{
		quizService:   quizService,
		exportService: exportService,
		usageService:  usageService,
	}
}

// WithCounterHealth makes Health report the reachability of the counter store.
func (h *QuizHandler) WithCounterHealth(p Pinger) *QuizHandler {
	h.counterPinger = p
	return h
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a plain-text quiz with answer key from pasted lesson content
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation options"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return domain.NewUpstreamError(fmt.Errorf("invalid request body: %w", err))
	}

	resp, err := h.quizService.GenerateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ExportDocx godoc
// @Summary Export quiz text as .docx
// @Description Renders each line of the quiz text as a paragraph of a Word document
// @Tags quiz
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param request body dto.ExportRequest true "Quiz text and filename"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /export-docx [post]
func (h *QuizHandler) ExportDocx(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return domain.NewInternalError("Export failed", err)
	}

	res, err := h.exportService.Export(c.UserContext(), &req)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	return c.Send(res.Content)
}

// Stats godoc
// @Summary Usage statistics
// @Description Total generations and per-hour counts for the last 24 UTC hours, newest first
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stats [get]
func (h *QuizHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.usageService.Snapshot(c.UserContext())
	if err != nil {
		return domain.NewInternalError("Failed to load stats", err)
	}
	return c.JSON(stats)
}

// Health godoc
// @Summary Liveness probe
// @Description Always 200; status is "degraded" when the counter store does not answer
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok"}
	if h.counterPinger != nil {
		resp.Counters = "ok"
		if err := h.counterPinger.Ping(c.UserContext()); err != nil {
			logger.Get().Warn("Counter store health check failed", zap.Error(err))
			resp.Status = "degraded"
			resp.Counters = "unavailable"
		}
	}
	return c.JSON(resp)
}
