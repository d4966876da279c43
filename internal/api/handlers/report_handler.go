package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/report"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/storage/models"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/storage/sqlite"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type ReportHandler struct {
	generator *report.Generator
	history   *sqlite.Client
	provider  string
	uploadDir string
}

func NewReportHandler(generator *report.Generator, history *sqlite.Client, provider, uploadDir string) *ReportHandler {
	return &ReportHandler{
		generator: generator,
		history:   history,
		provider:  provider,
		uploadDir: uploadDir,
	}
}

func (h *ReportHandler) GenerateReport(c *fiber.Ctx) error {
	oneLiner := strings.TrimSpace(c.FormValue("oneliner"))
	wcag := strings.TrimSpace(c.FormValue("wcag"))
	url := strings.TrimSpace(c.FormValue("url"))
	customFormat := c.FormValue("custom_format")

	if oneLiner == "" || wcag == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: oneliner and wcag",
		})
	}

	file, err := c.FormFile("screenshot")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Screenshot is required",
		})
	}

	mimeType := file.Header.Get("Content-Type")
	if !allowedImageTypes[mimeType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Only images are allowed.",
		})
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	screenshotPath := filepath.Join(h.uploadDir, filename)
	if err := c.SaveFile(file, screenshotPath); err != nil {
		logger.Error("Failed to save screenshot", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save screenshot",
		})
	}

	logger.Info("Generating report",
		zap.String("oneliner", oneLiner),
		zap.String("wcag", wcag),
		zap.String("screenshot", filename),
	)

	start := time.Now()
	result := h.generator.Generate(c.Context(), report.GenerationRequest{
		ScreenshotPath: screenshotPath,
		MimeType:       mimeType,
		OneLiner:       oneLiner,
		WCAG:           wcag,
		URL:            url,
		CustomFormat:   customFormat,
	})

	h.record(oneLiner, wcag, url, filename, result, time.Since(start))

	return c.JSON(fiber.Map{
		"report":    result,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"provider":  h.provider,
		"filename":  filename,
	})
}

func (h *ReportHandler) GetHistory(c *fiber.Ctx) error {
	if h.history == nil {
		return c.JSON(fiber.Map{"reports": []interface{}{}})
	}

	limit := c.QueryInt("limit", 50)
	records, err := h.history.ListReports(limit)
	if err != nil {
		logger.Error("Failed to list report history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch report history",
		})
	}

	reports := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		reports = append(reports, fiber.Map{
			"id":         r.ID,
			"oneliner":   r.OneLiner,
			"wcag":       r.WCAG,
			"url":        r.URL,
			"provider":   r.Provider,
			"report":     r.Report,
			"suggestion": r.Suggestion,
			"latency_ms": r.LatencyMS,
			"created_at": r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{"reports": reports})
}

// record persists the outcome for the history view. Best effort: a
// storage failure never fails the request that produced the report.
func (h *ReportHandler) record(oneLiner, wcag, url, filename string, result report.GenerationResult, latency time.Duration) {
	if h.history == nil {
		return
	}

	rec := &models.ReportRecord{
		ID:             uuid.New().String(),
		OneLiner:       oneLiner,
		WCAG:           wcag,
		URL:            url,
		Provider:       h.provider,
		Report:         result.Report,
		Suggestion:     result.Suggestion,
		ScreenshotName: filename,
		LatencyMS:      int(latency.Milliseconds()),
		CreatedAt:      time.Now(),
	}

	if err := h.history.InsertReport(rec); err != nil {
		logger.Warn("Failed to record report history", zap.Error(err))
	}
}
