//go:build !integration

package search

import (
	"context"
	"errors"
	"styleflame/domain"
	"testing"
)

type fakeSearchRepo struct {
	lastQuery domain.OutfitSearchQuery
	results   []domain.Outfit
	calls     int
}

func (f *fakeSearchRepo) Search(_ context.Context, query domain.OutfitSearchQuery) ([]domain.Outfit, error) {
	f.lastQuery = query
	f.calls++
	return f.results, nil
}

type fakeFacetRepo struct {
	ids           []string
	colors        []string
	wearabilities []string
	brands        []string
	calls         int
}

func (f *fakeFacetRepo) FindIDsByFacets(_ context.Context, colors, wearabilities, brands []string) ([]string, error) {
	f.colors, f.wearabilities, f.brands = colors, wearabilities, brands
	f.calls++
	return f.ids, nil
}

type fakeLister struct {
	calls     int
	lastLimit int
}

func (f *fakeLister) FindAll(_ context.Context, _ string, limit int) ([]domain.Outfit, error) {
	f.calls++
	f.lastLimit = limit
	return []domain.Outfit{{UniqueName: "listed"}}, nil
}

type passthroughAssembler struct{}

func (passthroughAssembler) AssembleViews(_ context.Context, _ string, outfits []domain.Outfit) ([]domain.OutfitView, error) {
	views := make([]domain.OutfitView, 0, len(outfits))
	for _, o := range outfits {
		views = append(views, domain.OutfitView{Outfit: o})
	}
	return views, nil
}

func newTestService() (*SearchService, *fakeSearchRepo, *fakeFacetRepo, *fakeLister) {
	searchRepo := &fakeSearchRepo{}
	facetRepo := &fakeFacetRepo{}
	lister := &fakeLister{}
	svc := NewSearchService(searchRepo, facetRepo, lister, passthroughAssembler{}, 8)
	return svc, searchRepo, facetRepo, lister
}

func TestSearchOutfits_NoCriteriaDelegatesToListing(t *testing.T) {
	svc, searchRepo, _, lister := newTestService()

	views, err := svc.SearchOutfits(context.Background(), "u1", "", "", "votesCounter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lister.calls != 1 {
		t.Error("expected delegation to the catalog listing")
	}
	if lister.lastLimit != 8 {
		t.Errorf("delegated listing must be capped at the feed size, got limit %d", lister.lastLimit)
	}
	if searchRepo.calls != 0 {
		t.Error("search store must not be queried without criteria")
	}
	if len(views) != 1 || views[0].UniqueName != "listed" {
		t.Errorf("unexpected result: %+v", views)
	}
}

func TestSearchOutfits_KeywordsReachTheQuery(t *testing.T) {
	svc, searchRepo, _, _ := newTestService()

	if _, err := svc.SearchOutfits(context.Background(), "u1", "summer dress", "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if searchRepo.lastQuery.Keywords != "summer dress" {
		t.Errorf("expected keywords in query, got %+v", searchRepo.lastQuery)
	}
}

func TestSearchOutfits_OutfitTierFilters(t *testing.T) {
	svc, searchRepo, facetRepo, _ := newTestService()

	filter := "occasionID $eq weekend;office $and styleID $eq casual $and totalPrice $eq priceTier1;priceTier5"
	if _, err := svc.SearchOutfits(context.Background(), "u1", "", filter, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := searchRepo.lastQuery
	if len(q.OccasionIDs) != 2 || q.OccasionIDs[0] != "weekend" {
		t.Errorf("unexpected occasion filter: %v", q.OccasionIDs)
	}
	if len(q.StyleIDs) != 1 || q.StyleIDs[0] != "casual" {
		t.Errorf("unexpected style filter: %v", q.StyleIDs)
	}
	if len(q.PriceRanges) != 2 {
		t.Fatalf("expected 2 price ranges, got %v", q.PriceRanges)
	}
	if *q.PriceRanges[0].Min != 0 || *q.PriceRanges[0].Max != 100 {
		t.Errorf("unexpected priceTier1 range: %+v", q.PriceRanges[0])
	}
	if *q.PriceRanges[1].Min != 1000 || q.PriceRanges[1].Max != nil {
		t.Errorf("unexpected priceTier5 range: %+v", q.PriceRanges[1])
	}
	if facetRepo.calls != 0 {
		t.Error("article facets must not be resolved without article-tier filters")
	}
}

func TestSearchOutfits_ArticleTierFiltersResolveToIDs(t *testing.T) {
	svc, searchRepo, facetRepo, _ := newTestService()
	facetRepo.ids = []string{"a1", "a2"}

	filter := "color $eq red;blue $and brand $eq acme"
	if _, err := svc.SearchOutfits(context.Background(), "u1", "", filter, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(facetRepo.colors) != 2 || len(facetRepo.brands) != 1 {
		t.Errorf("unexpected facet inputs: colors=%v brands=%v", facetRepo.colors, facetRepo.brands)
	}
	q := searchRepo.lastQuery
	if len(q.ArticleIDs) != 2 || q.MatchNoArticle {
		t.Errorf("expected resolved article IDs, got %+v", q)
	}
}

func TestSearchOutfits_ImpossibleArticleFilterMatchesNothing(t *testing.T) {
	svc, searchRepo, facetRepo, _ := newTestService()
	facetRepo.ids = nil

	if _, err := svc.SearchOutfits(context.Background(), "u1", "", "color $eq ultraviolet", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !searchRepo.lastQuery.MatchNoArticle {
		t.Error("expected MatchNoArticle when no article satisfies the filters")
	}
}

func TestSearchOutfits_MalformedFilterFails(t *testing.T) {
	svc, searchRepo, _, _ := newTestService()

	_, err := svc.SearchOutfits(context.Background(), "u1", "", "styleID casual", "")
	if !errors.Is(err, domain.ErrInvalidFilterExpression) {
		t.Fatalf("expected ErrInvalidFilterExpression, got %v", err)
	}
	if searchRepo.calls != 0 {
		t.Error("search store must not be queried with a malformed filter")
	}
}

func TestSearchOutfits_UnknownTierLabelsDropped(t *testing.T) {
	svc, searchRepo, _, _ := newTestService()

	if _, err := svc.SearchOutfits(context.Background(), "u1", "", "totalPrice $eq priceTier9;priceTier2", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := searchRepo.lastQuery
	if len(q.PriceRanges) != 1 || *q.PriceRanges[0].Min != 100 || *q.PriceRanges[0].Max != 300 {
		t.Errorf("expected only priceTier2 to survive, got %+v", q.PriceRanges)
	}
}

func TestSearchOutfits_OrderByPropagates(t *testing.T) {
	svc, searchRepo, _, _ := newTestService()

	if _, err := svc.SearchOutfits(context.Background(), "u1", "denim", "", "votesCounter"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if searchRepo.lastQuery.OrderBy != "votesCounter" {
		t.Errorf("expected orderBy in query, got %q", searchRepo.lastQuery.OrderBy)
	}
}
