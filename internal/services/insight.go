package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ojabooks/ojabooks-backend/internal/assistant"
	"github.com/ojabooks/ojabooks-backend/internal/cache"
	"github.com/ojabooks/ojabooks-backend/internal/logger"
	"github.com/ojabooks/ojabooks-backend/internal/platform/llm"
	"github.com/ojabooks/ojabooks-backend/internal/repos"
	"github.com/ojabooks/ojabooks-backend/internal/types"
)

// insightCacheTTL bounds how often a user's data is sent to the model.
const insightCacheTTL = 15 * time.Minute

// Insight is one piece of prioritized advice from the model.
type Insight struct {
	Message        string  `json:"message"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// InsightService generates business advice from the user's current data.
// Failure is explicit: there is no canned fallback content.
type InsightService interface {
	Generate(ctx context.Context, userID uuid.UUID) ([]Insight, error)
}

type insightService struct {
	log          *logger.Logger
	ai           llm.Client
	store        cache.Cache
	materialRepo repos.MaterialRepo
	saleRepo     repos.SaleRepo
	productRepo  repos.ProductRepo
}

func NewInsightService(
	log *logger.Logger,
	ai llm.Client,
	store cache.Cache,
	materialRepo repos.MaterialRepo,
	saleRepo repos.SaleRepo,
	productRepo repos.ProductRepo,
) InsightService {
	return &insightService{
		log:          log.With("service", "InsightService"),
		ai:           ai,
		store:        store,
		materialRepo: materialRepo,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
	}
}

func insightCacheKey(userID uuid.UUID) string {
	return "insights:" + userID.String()
}

func (s *insightService) Generate(ctx context.Context, userID uuid.UUID) ([]Insight, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if s.ai == nil {
		return nil, fmt.Errorf("insight generation unavailable: no model configured")
	}

	if s.store != nil {
		if raw, ok, err := s.store.Get(ctx, insightCacheKey(userID)); err == nil && ok {
			var cached []Insight
			if uErr := json.Unmarshal([]byte(raw), &cached); uErr == nil {
				return cached, nil
			}
		}
	}

	var (
		materials []*types.Material
		sales     []*types.Sale
		products  []*types.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		materials, err = s.materialRepo.GetByUserID(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.GetAllByUserID(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.productRepo.GetByUserID(gctx, nil, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	insights, err := s.generate(ctx, materials, sales, products)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if raw, mErr := json.Marshal(insights); mErr == nil {
			if sErr := s.store.Set(ctx, insightCacheKey(userID), string(raw), insightCacheTTL); sErr != nil {
				s.log.Warn("Failed to cache insights", "user_id", userID.String(), "error", sErr)
			}
		}
	}
	return insights, nil
}

func (s *insightService) generate(ctx context.Context, materials []*types.Material, sales []*types.Sale, products []*types.Product) ([]Insight, error) {
	materialsJSON, _ := json.MarshalIndent(materials, "", "  ")
	salesJSON, _ := json.MarshalIndent(sales, "", "  ")
	productsJSON, _ := json.MarshalIndent(products, "", "  ")

	user := fmt.Sprintf(`Analyze this business data and return ONLY a JSON array of 3-5 insights:

Materials: %s
Sales: %s
Products: %s

Response format (ONLY THIS, NO OTHER TEXT):
[
  {"message": "insight text", "relevanceScore": 0.9},
  {"message": "insight text", "relevanceScore": 0.8}
]`, materialsJSON, salesJSON, productsJSON)

	text, err := s.ai.GenerateText(ctx, assistant.InsightSystemPrompt(), user, llm.Options{MaxTokens: 1500, Temperature: 0.7})
	if err != nil {
		return nil, fmt.Errorf("insight generation: %w", err)
	}

	payload := assistant.ExtractJSONArray(text)
	if payload == "" {
		return nil, fmt.Errorf("insight generation: no JSON array in model response")
	}
	var insights []Insight
	if err := json.Unmarshal([]byte(payload), &insights); err != nil {
		return nil, fmt.Errorf("insight generation: decode: %w", err)
	}
	for i := range insights {
		if insights[i].RelevanceScore < 0 {
			insights[i].RelevanceScore = 0
		}
		if insights[i].RelevanceScore > 1 {
			insights[i].RelevanceScore = 1
		}
	}
	return insights, nil
}
