package search

import (
	"context"
	"fmt"
	"styleflame/domain"
	"styleflame/pkg/logger"
	"styleflame/pkg/metrics"
)

// ---- Repository interfaces ----

type SearchRepository interface {
	Search(ctx context.Context, query domain.OutfitSearchQuery) ([]domain.Outfit, error)
}

type ArticleFacetRepository interface {
	FindIDsByFacets(ctx context.Context, colors, wearabilities, brands []string) ([]string, error)
}

type OutfitLister interface {
	FindAll(ctx context.Context, orderBy string, limit int) ([]domain.Outfit, error)
}

// ViewAssembler resolves outfits into their decorated per-viewer views.
type ViewAssembler interface {
	AssembleViews(ctx context.Context, viewerID string, outfits []domain.Outfit) ([]domain.OutfitView, error)
}

// ---- Usecase / Service ----

type SearchService struct {
	searchRepo  SearchRepository
	articleRepo ArticleFacetRepository
	outfits     OutfitLister
	assembler   ViewAssembler
	maxOutfits  int
}

func NewSearchService(searchRepo SearchRepository, articleRepo ArticleFacetRepository, outfits OutfitLister, assembler ViewAssembler, maxOutfits int) *SearchService {
	return &SearchService{
		searchRepo:  searchRepo,
		articleRepo: articleRepo,
		outfits:     outfits,
		assembler:   assembler,
		maxOutfits:  maxOutfits,
	}
}

// SearchOutfits runs a free-text and/or filtered outfit search. With neither
// a searchBy keyword nor a filterBy expression it degrades to the plain
// catalog listing. Malformed filter expressions fail with
// domain.ErrInvalidFilterExpression.
func (s *SearchService) SearchOutfits(ctx context.Context, viewerID, searchBy, filterBy, orderBy string) ([]domain.OutfitView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if searchBy == "" && filterBy == "" {
		// same cap as the unpersonalized feed fallback
		metrics.SearchRequestsTotal.WithLabelValues("listing").Inc()
		outfits, err := s.outfits.FindAll(ctx, orderBy, s.maxOutfits)
		if err != nil {
			return nil, fmt.Errorf("failed to list outfits: %w", err)
		}
		return s.assemble(ctx, viewerID, outfits)
	}

	query, err := s.buildQuery(ctx, searchBy, filterBy, orderBy)
	if err != nil {
		return nil, err
	}

	kind := "filter"
	if searchBy != "" {
		kind = "text"
	}
	metrics.SearchRequestsTotal.WithLabelValues(kind).Inc()

	outfits, err := s.searchRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search outfits: %w", err)
	}

	logger.Debug("outfit_search",
		"user_id", viewerID,
		"kind", kind,
		"results", len(outfits),
	)

	return s.assemble(ctx, viewerID, outfits)
}

// buildQuery parses the filter expression and resolves article-tier facets
// to article IDs. Unknown filter fields are ignored.
func (s *SearchService) buildQuery(ctx context.Context, searchBy, filterBy, orderBy string) (domain.OutfitSearchQuery, error) {
	query := domain.OutfitSearchQuery{
		Keywords: searchBy,
		OrderBy:  orderBy,
	}

	expr, err := domain.ParseFilterExpression(filterBy)
	if err != nil {
		return domain.OutfitSearchQuery{}, err
	}
	if len(expr) == 0 {
		return query, nil
	}

	query.OccasionIDs = expr.ValuesFor(domain.FilterFieldOccasion)
	query.StyleIDs = expr.ValuesFor(domain.FilterFieldStyle)
	query.PriceRanges = resolvePriceTiers(expr.ValuesFor(domain.FilterFieldTotalPrice))

	colors := expr.ValuesFor(domain.FilterFieldColor)
	wearabilities := expr.ValuesFor(domain.FilterFieldWearability)
	brands := expr.ValuesFor(domain.FilterFieldBrand)
	if len(colors) == 0 && len(wearabilities) == 0 && len(brands) == 0 {
		return query, nil
	}

	articleIDs, err := s.articleRepo.FindIDsByFacets(ctx, colors, wearabilities, brands)
	if err != nil {
		return domain.OutfitSearchQuery{}, fmt.Errorf("failed to resolve article facets: %w", err)
	}

	if len(articleIDs) == 0 {
		// article filters were given but no article matches them; the
		// search must return nothing rather than ignore the filters
		query.MatchNoArticle = true
		return query, nil
	}

	query.ArticleIDs = articleIDs
	return query, nil
}

func (s *SearchService) assemble(ctx context.Context, viewerID string, outfits []domain.Outfit) ([]domain.OutfitView, error) {
	views, err := s.assembler.AssembleViews(ctx, viewerID, outfits)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble search views: %w", err)
	}
	return views, nil
}
