//go:build !integration

package feed

import (
	"context"
	"styleflame/domain"
	"testing"
	"time"
)

type fakeOutfitRepo struct {
	byStyle      map[string][]domain.Outfit
	all          []domain.Outfit
	styleLimits  map[string]int
	findAllCalls int
}

func (f *fakeOutfitRepo) FindAll(_ context.Context, _ string, limit int) ([]domain.Outfit, error) {
	f.findAllCalls++
	outfits := f.all
	if limit > 0 && len(outfits) > limit {
		outfits = outfits[:limit]
	}
	return outfits, nil
}

func (f *fakeOutfitRepo) FindByStyle(_ context.Context, styleID string, limit int) ([]domain.Outfit, error) {
	if f.styleLimits != nil {
		f.styleLimits[styleID] = limit
	}
	outfits := f.byStyle[styleID]
	if len(outfits) > limit {
		outfits = outfits[:limit]
	}
	return outfits, nil
}

type fakeProfileProvider struct {
	profile domain.StyleAffinityProfile
}

func (f *fakeProfileProvider) GetStyleProfile(_ context.Context, _ string) (domain.StyleAffinityProfile, error) {
	return f.profile, nil
}

type passthroughAssembler struct{}

func (passthroughAssembler) AssembleViews(_ context.Context, _ string, outfits []domain.Outfit) ([]domain.OutfitView, error) {
	views := make([]domain.OutfitView, 0, len(outfits))
	for _, o := range outfits {
		views = append(views, domain.OutfitView{Outfit: o})
	}
	return views, nil
}

func makeOutfits(styleID string, n int, baseVotes int64) []domain.Outfit {
	outfits := make([]domain.Outfit, 0, n)
	for i := 0; i < n; i++ {
		outfits = append(outfits, domain.Outfit{
			UniqueName:   styleID + "-" + string(rune('a'+i)),
			StyleID:      styleID,
			VotesCounter: baseVotes - int64(i),
			UpdatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Duration(i) * time.Hour),
		})
	}
	return outfits
}

func TestGetInspiration_SingleStyleFillsWholeFeed(t *testing.T) {
	repo := &fakeOutfitRepo{
		byStyle:     map[string][]domain.Outfit{"casual": makeOutfits("casual", 12, 100)},
		styleLimits: make(map[string]int),
	}
	profiles := &fakeProfileProvider{profile: domain.StyleAffinityProfile{
		{StyleID: "casual", Percentage: 1.0},
	}}

	svc := NewFeedService(repo, profiles, passthroughAssembler{}, 8, "updatedAt")

	views, err := svc.GetInspiration(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 8 {
		t.Fatalf("expected 8 outfits, got %d", len(views))
	}
	if repo.styleLimits["casual"] != 8 {
		t.Errorf("expected style quota 8, got %d", repo.styleLimits["casual"])
	}
	if repo.findAllCalls != 0 {
		t.Errorf("personalized feed must not hit the catalog listing")
	}
}

func TestGetInspiration_QuotaRoundsHalfUp(t *testing.T) {
	repo := &fakeOutfitRepo{
		byStyle: map[string][]domain.Outfit{
			"casual": makeOutfits("casual", 10, 100),
			"boho":   makeOutfits("boho", 10, 50),
		},
		styleLimits: make(map[string]int),
	}
	// 0.7*8 = 5.6 -> 6 slots; 0.3*8 = 2.4 -> 2 slots
	profiles := &fakeProfileProvider{profile: domain.StyleAffinityProfile{
		{StyleID: "casual", Percentage: 0.7},
		{StyleID: "boho", Percentage: 0.3},
	}}

	svc := NewFeedService(repo, profiles, passthroughAssembler{}, 8, "updatedAt")

	if _, err := svc.GetInspiration(context.Background(), "u1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.styleLimits["casual"] != 6 {
		t.Errorf("expected quota 6 for casual, got %d", repo.styleLimits["casual"])
	}
	if repo.styleLimits["boho"] != 2 {
		t.Errorf("expected quota 2 for boho, got %d", repo.styleLimits["boho"])
	}
}

func TestGetInspiration_HalfSlotRoundsUp(t *testing.T) {
	repo := &fakeOutfitRepo{
		byStyle: map[string][]domain.Outfit{
			"casual": makeOutfits("casual", 10, 100),
			"boho":   makeOutfits("boho", 10, 50),
		},
		styleLimits: make(map[string]int),
	}
	// 0.0625*8 = 0.5 -> 1 slot, not 0
	profiles := &fakeProfileProvider{profile: domain.StyleAffinityProfile{
		{StyleID: "casual", Percentage: 0.9375},
		{StyleID: "boho", Percentage: 0.0625},
	}}

	svc := NewFeedService(repo, profiles, passthroughAssembler{}, 8, "updatedAt")

	if _, err := svc.GetInspiration(context.Background(), "u1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.styleLimits["boho"] != 1 {
		t.Errorf("expected half a slot to round up to 1, got %d", repo.styleLimits["boho"])
	}
}

func TestGetInspiration_TinyAffinityRoundsToZeroSlots(t *testing.T) {
	repo := &fakeOutfitRepo{
		byStyle: map[string][]domain.Outfit{
			"casual": makeOutfits("casual", 10, 100),
			"rare":   makeOutfits("rare", 10, 10),
		},
		styleLimits: make(map[string]int),
	}
	// 0.05*8 = 0.4 -> 0 slots, the style is skipped entirely
	profiles := &fakeProfileProvider{profile: domain.StyleAffinityProfile{
		{StyleID: "casual", Percentage: 0.95},
		{StyleID: "rare", Percentage: 0.05},
	}}

	svc := NewFeedService(repo, profiles, passthroughAssembler{}, 8, "updatedAt")

	if _, err := svc.GetInspiration(context.Background(), "u1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, called := repo.styleLimits["rare"]; called {
		t.Error("style with zero quota must not be fetched")
	}
}

func TestGetInspiration_EmptyProfileFallsBack(t *testing.T) {
	repo := &fakeOutfitRepo{all: makeOutfits("any", 10, 100)}
	profiles := &fakeProfileProvider{profile: nil}

	svc := NewFeedService(repo, profiles, passthroughAssembler{}, 8, "updatedAt")

	views, err := svc.GetInspiration(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.findAllCalls != 1 {
		t.Errorf("expected fallback to catalog listing, findAllCalls=%d", repo.findAllCalls)
	}
	if len(views) != 8 {
		t.Errorf("expected 8 outfits from fallback, got %d", len(views))
	}
}

func TestGetInspiration_AllQuotasZeroFallsBack(t *testing.T) {
	repo := &fakeOutfitRepo{all: makeOutfits("any", 4, 100)}
	profiles := &fakeProfileProvider{profile: domain.StyleAffinityProfile{
		{StyleID: "a", Percentage: 0.02},
		{StyleID: "b", Percentage: 0.03},
	}}

	svc := NewFeedService(repo, profiles, passthroughAssembler{}, 8, "updatedAt")

	views, err := svc.GetInspiration(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.findAllCalls != 1 {
		t.Error("expected fallback when every quota rounds to zero")
	}
	if len(views) != 4 {
		t.Errorf("expected 4 outfits, got %d", len(views))
	}
}

func TestGetInspiration_GlobalResortAfterPerStyleFetch(t *testing.T) {
	repo := &fakeOutfitRepo{
		byStyle: map[string][]domain.Outfit{
			"casual": {
				{UniqueName: "c1", StyleID: "casual", VotesCounter: 5},
				{UniqueName: "c2", StyleID: "casual", VotesCounter: 50},
			},
			"boho": {
				{UniqueName: "b1", StyleID: "boho", VotesCounter: 30},
				{UniqueName: "b2", StyleID: "boho", VotesCounter: 1},
			},
		},
	}
	profiles := &fakeProfileProvider{profile: domain.StyleAffinityProfile{
		{StyleID: "casual", Percentage: 0.5},
		{StyleID: "boho", Percentage: 0.5},
	}}

	svc := NewFeedService(repo, profiles, passthroughAssembler{}, 4, "updatedAt")

	views, err := svc.GetInspiration(context.Background(), "u1", "votesCounter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"c2", "b1", "c1", "b2"}
	if len(views) != len(want) {
		t.Fatalf("expected %d outfits, got %d", len(want), len(views))
	}
	for i, name := range want {
		if views[i].UniqueName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, views[i].UniqueName)
		}
	}
}
