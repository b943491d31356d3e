package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seoscore/seoscore/internal/config"
	"github.com/seoscore/seoscore/internal/service/analyzer"
	"github.com/seoscore/seoscore/internal/service/seo"
)

// AnalysisHandler handles content scoring requests
type AnalysisHandler struct {
	Service *analyzer.Service
	Config  *config.Config
}

// PageAnalysisRequest represents a request to score a live page
type PageAnalysisRequest struct {
	URL          string `json:"url" validate:"required,url"`
	FocusKeyword string `json:"focus_keyword"`
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *analyzer.Service, cfg *config.Config) *AnalysisHandler {
	return &AnalysisHandler{
		Service: service,
		Config:  cfg,
	}
}

// AnalyzeContent scores a content payload and records the run
func (h *AnalysisHandler) AnalyzeContent(c *fiber.Ctx) error {
	input := new(seo.AnalysisInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}

	result := h.Service.AnalyzeContent(*input)

	record, err := h.Service.SaveAnalysis(*input, result)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save analysis: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"analysis_id": record.ID,
			"result":      result,
		},
	})
}

// AnalyzePage fetches a live page, scores it and records the run
func (h *AnalysisHandler) AnalyzePage(c *fiber.Ctx) error {
	req := new(PageAnalysisRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}
	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "url is required",
		})
	}

	record, result, err := h.Service.AnalyzePage(req.URL, req.FocusKeyword)
	if err != nil {
		status := fiber.StatusBadGateway
		if result != nil {
			// The page was scored but could not be recorded
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"analysis_id": record.ID,
			"result":      result,
		},
	})
}

// ListAnalyses returns stored analyses newest first
func (h *AnalysisHandler) ListAnalyses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	keyword := c.Query("focus_keyword")

	analyses, total, err := h.Service.ListAnalyses(page, pageSize, keyword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to list analyses: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    analyses,
		"meta": fiber.Map{
			"page":      page,
			"page_size": pageSize,
			"total":     total,
		},
	})
}

// GetAnalysis returns one stored analysis by ID
func (h *AnalysisHandler) GetAnalysis(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid analysis ID",
		})
	}

	record, err := h.Service.GetAnalysis(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Analysis not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get analysis: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

// DeleteAnalysis removes one stored analysis
func (h *AnalysisHandler) DeleteAnalysis(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid analysis ID",
		})
	}

	if err := h.Service.DeleteAnalysis(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Analysis not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete analysis: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// GetRules returns the scoring rule registry
func (h *AnalysisHandler) GetRules(c *fiber.Ctx) error {
	rules := seo.Rules()
	out := make([]fiber.Map, 0, len(rules))
	for _, r := range rules {
		out = append(out, fiber.Map{
			"name":      r.Name,
			"category":  r.Category,
			"max_score": r.MaxScore,
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    out,
	})
}
