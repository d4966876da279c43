package report

import (
	"context"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/YashuMishra/Accessibility-AI-Agent/internal/cache/redis"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/metrics"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/provider"
	"github.com/YashuMishra/Accessibility-AI-Agent/internal/training"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/logger"
	"github.com/YashuMishra/Accessibility-AI-Agent/pkg/utils"
)

// GenerationRequest describes one report to produce. ScreenshotPath
// points at an already persisted upload; MimeType may be empty, in
// which case it is sniffed from the image bytes.
type GenerationRequest struct {
	ScreenshotPath string
	MimeType       string
	OneLiner       string
	WCAG           string
	URL            string
	CustomFormat   string
}

// GenerationResult is always well formed. A failed model call shows up
// as a Report of the form "Error: ...", never as a Go error; callers
// that need to distinguish failure from content check that prefix.
type GenerationResult struct {
	Report     string `json:"report"`
	Suggestion string `json:"suggestion"`
}

var (
	bugReportPattern  = regexp.MustCompile(`(?is)---BUG REPORT---(.*?)---SUGGESTION---`)
	suggestionPattern = regexp.MustCompile(`(?is)---SUGGESTION---(.*)`)
)

// Generator runs the pipeline: retrieve similar examples, build the
// prompt, call the model once, parse the answer. Cache is optional.
type Generator struct {
	store    *training.Store
	model    provider.Generator
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewGenerator(store *training.Store, model provider.Generator) *Generator {
	return &Generator{
		store: store,
		model: model,
	}
}

// WithCache enables result caching keyed on prompt and image bytes.
func (g *Generator) WithCache(cache *redis.Client, ttl time.Duration) *Generator {
	g.cache = cache
	g.cacheTTL = ttl
	return g
}

// Generate always returns a result; model and screenshot failures are
// folded into the report text so the pipeline stays total.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) GenerationResult {
	start := time.Now()

	examples := g.store.FindSimilar(req.OneLiner, req.WCAG)
	metrics.RetrievedExamples.Observe(float64(len(examples)))

	prompt := SystemPrompt(examples) + "\n\n" + BuildPrompt(examples, req.OneLiner, req.WCAG, req.URL, req.CustomFormat)

	useCustomFormat := strings.TrimSpace(req.CustomFormat) != ""

	raw, failed := g.invoke(ctx, prompt, req)

	result := parseResponse(raw, useCustomFormat)

	status := "success"
	if failed {
		status = "error"
	}
	metrics.ReportsGenerated.WithLabelValues(g.model.Name(), status).Inc()
	metrics.GenerationDuration.WithLabelValues(g.model.Name()).Observe(time.Since(start).Seconds())

	logger.Info("Report generated",
		zap.String("wcag", req.WCAG),
		zap.Int("similar_examples", len(examples)),
		zap.Bool("custom_format", useCustomFormat),
		zap.String("status", status),
		zap.Duration("latency", time.Since(start)),
	)

	return result
}

// invoke performs the single model attempt. The boolean reports
// whether the returned text is an error sentinel rather than model
// output.
func (g *Generator) invoke(ctx context.Context, prompt string, req GenerationRequest) (string, bool) {
	image, err := os.ReadFile(req.ScreenshotPath)
	if err != nil {
		logger.Error("Failed to read screenshot", zap.String("path", req.ScreenshotPath), zap.Error(err))
		return "Error: " + err.Error(), true
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	cacheKey := ""
	if g.cache != nil {
		cacheKey = utils.HashBytes([]byte(prompt), image)
		var cached string
		hit, err := g.cache.GetReport(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warn("Report cache read failed", zap.Error(err))
		} else if hit {
			metrics.CacheHits.Inc()
			return cached, false
		}
		metrics.CacheMisses.Inc()
	}

	raw, err := g.model.Generate(ctx, prompt, image, mimeType)
	if err != nil {
		logger.Error("Model invocation failed",
			zap.String("provider", g.model.Name()),
			zap.Error(err),
		)
		return "Error: " + err.Error(), true
	}

	if g.cache != nil {
		if err := g.cache.SetReport(ctx, cacheKey, raw, g.cacheTTL); err != nil {
			logger.Warn("Report cache write failed", zap.Error(err))
		}
	}

	return raw, false
}

// parseResponse splits the delimited model output. Missing markers
// degrade to defaults: the full raw text as the report, an empty
// suggestion.
func parseResponse(raw string, useCustomFormat bool) GenerationResult {
	if useCustomFormat {
		return GenerationResult{Report: raw}
	}

	result := GenerationResult{Report: raw}

	if m := bugReportPattern.FindStringSubmatch(raw); m != nil {
		result.Report = strings.TrimSpace(m[1])
	}
	if m := suggestionPattern.FindStringSubmatch(raw); m != nil {
		result.Suggestion = strings.TrimSpace(m[1])
	}

	return result
}
