package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/metrics"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
)

type TrainingHandler struct {
	store *training.Store
}

func NewTrainingHandler(store *training.Store) *TrainingHandler {
	return &TrainingHandler{store: store}
}

func (h *TrainingHandler) AddExample(c *fiber.Ctx) error {
	var example training.Example
	if err := c.BodyParser(&example); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if example.OneLiner == "" || example.WCAG == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: one_liner and wcag_failure",
		})
	}

	stored := h.store.Add(example)
	metrics.TrainingExamplesTotal.Set(float64(h.store.Len()))

	logger.Info("Training example added",
		zap.String("id", stored.ID),
		zap.String("wcag", stored.WCAG),
	)

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "Training example added successfully",
		"example":        stored,
		"total_examples": h.store.Len(),
	})
}

func (h *TrainingHandler) ListExamples(c *fiber.Ctx) error {
	examples := h.store.List()
	if examples == nil {
		examples = []training.Example{}
	}

	return c.JSON(fiber.Map{
		"examples": examples,
		"total":    len(examples),
		"metadata": h.store.Metadata(),
	})
}

func (h *TrainingHandler) RemoveExample(c *fiber.Ctx) error {
	id := c.Params("id")

	if !h.store.Remove(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Example not found",
		})
	}

	metrics.TrainingExamplesTotal.Set(float64(h.store.Len()))

	logger.Info("Training example removed", zap.String("id", id))

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "Training example deleted successfully",
		"total_examples": h.store.Len(),
	})
}
