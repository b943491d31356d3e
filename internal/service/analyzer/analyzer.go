package analyzer

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/seoscore/seoscore/internal/models"
	"github.com/seoscore/seoscore/internal/repository"
	"github.com/seoscore/seoscore/internal/repository/cache"
	"github.com/seoscore/seoscore/internal/service/parser"
	"github.com/seoscore/seoscore/internal/service/seo"
)

// Service runs scoring requests, memoizes results and records history.
type Service struct {
	engine       *seo.Engine
	repo         repository.AnalysisRepository
	cache        *cache.Repository
	parseTimeout time.Duration
}

// NewService creates the analysis service. cache may be built around a
// nil Redis client; repo must not be nil.
func NewService(engine *seo.Engine, repo repository.AnalysisRepository, cacheRepo *cache.Repository, parseTimeout time.Duration) *Service {
	return &Service{
		engine:       engine,
		repo:         repo,
		cache:        cacheRepo,
		parseTimeout: parseTimeout,
	}
}

// AnalyzeContent scores the given input. Scoring is deterministic, so
// the result is memoized under a digest of the input.
func (s *Service) AnalyzeContent(input seo.AnalysisInput) *seo.Result {
	key := cache.ResultKey(input)
	if cached, err := s.cache.GetResult(key); err != nil {
		log.Printf("result cache read failed: %v", err)
	} else if cached != nil {
		return cached
	}

	result := s.engine.Analyze(input)

	if err := s.cache.CacheResult(key, result); err != nil {
		log.Printf("result cache write failed: %v", err)
	}
	return result
}

// AnalyzePage fetches a live page, scores it and records the outcome.
func (s *Service) AnalyzePage(pageURL, focusKeyword string) (*models.ContentAnalysis, *seo.Result, error) {
	page, err := parser.FetchPage(pageURL, s.parseTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	input := page.ToAnalysisInput(focusKeyword)
	result := s.AnalyzeContent(input)

	record, err := s.saveAnalysis(input, result)
	if err != nil {
		return nil, result, err
	}
	return record, result, nil
}

// SaveAnalysis records a direct (non-fetched) scoring run.
func (s *Service) SaveAnalysis(input seo.AnalysisInput, result *seo.Result) (*models.ContentAnalysis, error) {
	return s.saveAnalysis(input, result)
}

func (s *Service) saveAnalysis(input seo.AnalysisInput, result *seo.Result) (*models.ContentAnalysis, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	record := &models.ContentAnalysis{
		URL:          input.URL,
		Title:        input.Title,
		FocusKeyword: input.FocusKeyword,
		Score:        result.Score,
		MaxScore:     result.MaxScore,
		Rating:       string(result.Rating),
		WordCount:    result.Stats.WordCount,
		Result:       datatypes.JSON(resultJSON),
	}

	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	if err := s.cache.CacheAnalysis(record); err != nil {
		log.Printf("analysis cache write failed: %v", err)
	}
	return record, nil
}

// GetAnalysis returns a stored analysis, preferring the cache.
func (s *Service) GetAnalysis(id uuid.UUID) (*models.ContentAnalysis, error) {
	if cached, err := s.cache.GetAnalysis(id); err != nil {
		log.Printf("analysis cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	record, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheAnalysis(record); err != nil {
		log.Printf("analysis cache write failed: %v", err)
	}
	return record, nil
}

// ListAnalyses returns stored analyses newest first.
func (s *Service) ListAnalyses(page, pageSize int, keyword string) ([]*models.ContentAnalysis, int64, error) {
	return s.repo.List(page, pageSize, keyword)
}

// DeleteAnalysis removes a stored analysis and drops it from the cache.
func (s *Service) DeleteAnalysis(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if err := s.cache.InvalidateAnalysisCache(id); err != nil {
		log.Printf("analysis cache invalidation failed: %v", err)
	}
	return nil
}
