//go:build !integration

package profile

import (
	"context"
	"errors"
	"math"
	"styleflame/domain"
	"testing"

	"gorm.io/datatypes"
)

type fakeInteractionRepo struct {
	byAction      map[string][]domain.Interaction
	styleSearches []domain.Interaction
	limits        map[string]int
	err           error
}

func (f *fakeInteractionRepo) RecentByAction(_ context.Context, _, action string, limit int) ([]domain.Interaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.limits != nil {
		f.limits[action] = limit
	}
	events := f.byAction[action]
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (f *fakeInteractionRepo) RecentStyleFilterSearches(_ context.Context, _ string, limit int) ([]domain.Interaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.limits != nil {
		f.limits[domain.ActionOutfitSearch] = limit
	}
	events := f.styleSearches
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

type fakeStyleResolver struct {
	styles map[string]string
	err    error
}

func (f *fakeStyleResolver) StylesByOutfitIDs(_ context.Context, outfitIDs []string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]string)
	for _, id := range outfitIDs {
		if style, ok := f.styles[id]; ok {
			out[id] = style
		}
	}
	return out, nil
}

func upvote(outfitID string) domain.Interaction {
	return domain.Interaction{Action: domain.ActionOutfitUpvote, OutfitID: outfitID}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGetStyleProfile_SingleChannelNormalization(t *testing.T) {
	repo := &fakeInteractionRepo{
		byAction: map[string][]domain.Interaction{
			domain.ActionOutfitUpvote: {upvote("o1"), upvote("o2"), upvote("o3"), upvote("o4")},
		},
	}
	resolver := &fakeStyleResolver{styles: map[string]string{
		"o1": "casual", "o2": "casual", "o3": "casual", "o4": "boho",
	}}

	svc := NewProfileService(repo, resolver, DefaultConfig())

	profile, err := svc.GetStyleProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(profile) != 2 {
		t.Fatalf("expected 2 styles, got %d", len(profile))
	}

	// 3/4 and 1/4 of the upvote quota 0.2
	if profile[0].StyleID != "casual" || !approxEqual(profile[0].Percentage, 0.15) {
		t.Errorf("unexpected top affinity: %+v", profile[0])
	}
	if profile[1].StyleID != "boho" || !approxEqual(profile[1].Percentage, 0.05) {
		t.Errorf("unexpected second affinity: %+v", profile[1])
	}
}

func TestGetStyleProfile_UnresolvableEventsExcludedFromDenominator(t *testing.T) {
	repo := &fakeInteractionRepo{
		byAction: map[string][]domain.Interaction{
			domain.ActionOutfitUpvote: {upvote("o1"), upvote("deleted-1"), upvote("deleted-2")},
		},
	}
	resolver := &fakeStyleResolver{styles: map[string]string{"o1": "casual"}}

	svc := NewProfileService(repo, resolver, DefaultConfig())

	profile, err := svc.GetStyleProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the deleted outfits must not dilute the share: 1/1, not 1/3
	if len(profile) != 1 || !approxEqual(profile[0].Percentage, 0.2) {
		t.Errorf("expected full upvote quota for casual, got %+v", profile)
	}
}

func TestGetStyleProfile_NoEventsYieldsEmptyProfile(t *testing.T) {
	repo := &fakeInteractionRepo{byAction: map[string][]domain.Interaction{}}
	resolver := &fakeStyleResolver{styles: map[string]string{}}

	svc := NewProfileService(repo, resolver, DefaultConfig())

	profile, err := svc.GetStyleProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !profile.IsEmpty() {
		t.Errorf("expected empty profile, got %+v", profile)
	}
}

func TestGetStyleProfile_ShowTimeWeightsByDuration(t *testing.T) {
	repo := &fakeInteractionRepo{
		byAction: map[string][]domain.Interaction{
			domain.ActionOutfitShowTime: {
				{Action: domain.ActionOutfitShowTime, OutfitID: "o1", ShowTimeMs: 3000},
				{Action: domain.ActionOutfitShowTime, OutfitID: "o2", ShowTimeMs: 1000},
			},
		},
	}
	resolver := &fakeStyleResolver{styles: map[string]string{"o1": "casual", "o2": "boho"}}

	svc := NewProfileService(repo, resolver, DefaultConfig())

	profile, err := svc.GetStyleProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3000/4000 and 1000/4000 of the show-time quota 0.05
	if profile[0].StyleID != "casual" || !approxEqual(profile[0].Percentage, 0.0375) {
		t.Errorf("unexpected show-time weighting: %+v", profile)
	}
	if profile[1].StyleID != "boho" || !approxEqual(profile[1].Percentage, 0.0125) {
		t.Errorf("unexpected show-time weighting: %+v", profile)
	}
}

func TestGetStyleProfile_FilterChannelExtractsStyles(t *testing.T) {
	repo := &fakeInteractionRepo{
		styleSearches: []domain.Interaction{
			{
				Action:  domain.ActionOutfitSearch,
				Payload: datatypes.JSONMap{domain.PayloadFilterBy: "styleID $eq casual"},
			},
			{
				Action:  domain.ActionOutfitSearch,
				Payload: datatypes.JSONMap{domain.PayloadFilterBy: "occasionID $eq weekend $and styleID $eq casual;minimal"},
			},
		},
	}
	resolver := &fakeStyleResolver{styles: map[string]string{}}

	svc := NewProfileService(repo, resolver, DefaultConfig())

	profile, err := svc.GetStyleProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2/3 and 1/3 of the style-filter quota 0.3
	if profile[0].StyleID != "casual" || !approxEqual(profile[0].Percentage, 0.2) {
		t.Errorf("unexpected filter channel scoring: %+v", profile)
	}
	if profile[1].StyleID != "minimal" || !approxEqual(profile[1].Percentage, 0.1) {
		t.Errorf("unexpected filter channel scoring: %+v", profile)
	}
}

func TestGetStyleProfile_ChannelsAccumulatePerStyle(t *testing.T) {
	repo := &fakeInteractionRepo{
		byAction: map[string][]domain.Interaction{
			domain.ActionOutfitUpvote: {upvote("o1")},
			domain.ActionOutfitBuy:    {{Action: domain.ActionOutfitBuy, OutfitID: "o1"}},
		},
	}
	resolver := &fakeStyleResolver{styles: map[string]string{"o1": "casual"}}

	svc := NewProfileService(repo, resolver, DefaultConfig())

	profile, err := svc.GetStyleProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// full upvote quota + full buy quota
	if len(profile) != 1 || !approxEqual(profile[0].Percentage, 0.5) {
		t.Errorf("expected accumulated quotas, got %+v", profile)
	}
}

func TestGetStyleProfile_UsesPerChannelLimits(t *testing.T) {
	repo := &fakeInteractionRepo{
		byAction: map[string][]domain.Interaction{},
		limits:   make(map[string]int),
	}
	resolver := &fakeStyleResolver{styles: map[string]string{}}

	svc := NewProfileService(repo, resolver, DefaultConfig())

	if _, err := svc.GetStyleProfile(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]int{
		domain.ActionOutfitUpvote:   defaultNUpvote,
		domain.ActionOutfitOpen:     defaultNOpen,
		domain.ActionOutfitBuy:      defaultNBuy,
		domain.ActionOutfitShowTime: defaultNShowTime,
		domain.ActionOutfitSearch:   defaultNStyleFilter,
	}
	for action, limit := range want {
		if repo.limits[action] != limit {
			t.Errorf("action %s: expected limit %d, got %d", action, limit, repo.limits[action])
		}
	}
}

func TestGetStyleProfile_FetchErrorPropagates(t *testing.T) {
	repo := &fakeInteractionRepo{err: errors.New("db down")}
	resolver := &fakeStyleResolver{}

	svc := NewProfileService(repo, resolver, DefaultConfig())

	if _, err := svc.GetStyleProfile(context.Background(), "u1"); err == nil {
		t.Fatal("expected error when a channel fetch fails")
	}
}

func TestGetStyleProfile_EmptyUserRejected(t *testing.T) {
	svc := NewProfileService(&fakeInteractionRepo{}, &fakeStyleResolver{}, DefaultConfig())

	if _, err := svc.GetStyleProfile(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}
