package profile

import (
	"context"
	"fmt"
	"sort"
	"styleflame/domain"
	"styleflame/pkg/logger"
	"styleflame/pkg/metrics"
	"sync"
	"time"
)

// ---- Repository interfaces ----

type InteractionRepository interface {
	RecentByAction(ctx context.Context, userID, action string, limit int) ([]domain.Interaction, error)
	RecentStyleFilterSearches(ctx context.Context, userID string, limit int) ([]domain.Interaction, error)
}

// StyleResolver joins outfit IDs to their style. Outfits that no longer
// exist are absent from the map.
type StyleResolver interface {
	StylesByOutfitIDs(ctx context.Context, outfitIDs []string) (map[string]string, error)
}

// ---- Usecase / Service ----

type ProfileService struct {
	interactionRepo InteractionRepository
	styleResolver   StyleResolver
	cfg             Config
}

func NewProfileService(interactionRepo InteractionRepository, styleResolver StyleResolver, cfg Config) *ProfileService {
	return &ProfileService{
		interactionRepo: interactionRepo,
		styleResolver:   styleResolver,
		cfg:             cfg,
	}
}

// channel bundles the fetched events of one behavioural signal with its
// quota, before scoring.
type channel struct {
	action string
	quota  float64
	events []domain.Interaction
	err    error
}

// GetStyleProfile derives the viewer's style affinity profile from the most
// recent events of each channel. An empty profile means the viewer has no
// usable personalization data and the caller must fall back to the
// unpersonalized feed.
func (s *ProfileService) GetStyleProfile(ctx context.Context, userID string) (domain.StyleAffinityProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	start := time.Now()

	channels := []*channel{
		{action: domain.ActionOutfitUpvote, quota: s.cfg.QuotaUpvote},
		{action: domain.ActionOutfitOpen, quota: s.cfg.QuotaOpen},
		{action: domain.ActionOutfitBuy, quota: s.cfg.QuotaBuy},
		{action: domain.ActionOutfitShowTime, quota: s.cfg.QuotaShowTime},
		{action: domain.ActionOutfitSearch, quota: s.cfg.QuotaStyleFilter},
	}
	limits := map[string]int{
		domain.ActionOutfitUpvote:   s.cfg.NUpvote,
		domain.ActionOutfitOpen:     s.cfg.NOpen,
		domain.ActionOutfitBuy:      s.cfg.NBuy,
		domain.ActionOutfitShowTime: s.cfg.NShowTime,
		domain.ActionOutfitSearch:   s.cfg.NStyleFilter,
	}

	// channels are independent; fetch them concurrently, each with its own
	// recency order and limit
	var wg sync.WaitGroup
	for _, ch := range channels {
		wg.Add(1)
		go func(ch *channel) {
			defer wg.Done()
			if ch.action == domain.ActionOutfitSearch {
				ch.events, ch.err = s.interactionRepo.RecentStyleFilterSearches(ctx, userID, limits[ch.action])
				return
			}
			ch.events, ch.err = s.interactionRepo.RecentByAction(ctx, userID, ch.action, limits[ch.action])
		}(ch)
	}
	wg.Wait()

	for _, ch := range channels {
		if ch.err != nil {
			logger.Error("Failed to fetch interaction channel", "action", ch.action, "error", ch.err)
			return nil, fmt.Errorf("failed to fetch %s channel: %w", ch.action, ch.err)
		}
	}

	// resolve every referenced outfit to its style in one round trip
	styleByOutfit, err := s.resolveStyles(ctx, channels)
	if err != nil {
		return nil, err
	}

	contributions := make(map[string]float64)
	for _, ch := range channels {
		switch ch.action {
		case domain.ActionOutfitShowTime:
			scoreDurationChannel(ch, styleByOutfit, contributions)
		case domain.ActionOutfitSearch:
			scoreFilterChannel(ch, contributions)
		default:
			scoreCountChannel(ch, styleByOutfit, contributions)
		}
	}

	profile := make(domain.StyleAffinityProfile, 0, len(contributions))
	for styleID, percentage := range contributions {
		profile = append(profile, domain.StyleAffinity{StyleID: styleID, Percentage: percentage})
	}
	sort.Slice(profile, func(i, j int) bool {
		if profile[i].Percentage != profile[j].Percentage {
			return profile[i].Percentage > profile[j].Percentage
		}
		return profile[i].StyleID < profile[j].StyleID
	})

	outcome := "ok"
	if profile.IsEmpty() {
		outcome = "empty"
	}
	metrics.ProfileComputationsTotal.WithLabelValues(outcome).Inc()
	metrics.ProfileComputeLatency.Observe(time.Since(start).Seconds())

	logger.Debug("style_profile_computed",
		"user_id", userID,
		"styles", len(profile),
		"outcome", outcome,
	)

	return profile, nil
}

func (s *ProfileService) resolveStyles(ctx context.Context, channels []*channel) (map[string]string, error) {
	seen := make(map[string]struct{})
	var outfitIDs []string
	for _, ch := range channels {
		if ch.action == domain.ActionOutfitSearch {
			continue // filter events carry styles directly
		}
		for _, event := range ch.events {
			if event.OutfitID == "" {
				continue
			}
			if _, ok := seen[event.OutfitID]; ok {
				continue
			}
			seen[event.OutfitID] = struct{}{}
			outfitIDs = append(outfitIDs, event.OutfitID)
		}
	}

	styleByOutfit, err := s.styleResolver.StylesByOutfitIDs(ctx, outfitIDs)
	if err != nil {
		logger.Error("Failed to resolve outfit styles", err)
		return nil, fmt.Errorf("failed to resolve outfit styles: %w", err)
	}

	return styleByOutfit, nil
}

// scoreCountChannel counts occurrences per resolved style and adds the
// normalized share of the channel quota. Events whose outfit no longer
// resolves are excluded from both the numerator and the denominator.
func scoreCountChannel(ch *channel, styleByOutfit map[string]string, contributions map[string]float64) {
	counts := make(map[string]int)
	total := 0
	for _, event := range ch.events {
		styleID, ok := styleByOutfit[event.OutfitID]
		if !ok || styleID == "" {
			continue
		}
		counts[styleID]++
		total++
	}
	if total == 0 {
		return // empty channel contributes nothing
	}

	for styleID, count := range counts {
		contributions[styleID] += (float64(count) / float64(total)) * ch.quota
	}
}

// scoreDurationChannel sums show durations per resolved style instead of
// counting events.
func scoreDurationChannel(ch *channel, styleByOutfit map[string]string, contributions map[string]float64) {
	durations := make(map[string]int64)
	var total int64
	for _, event := range ch.events {
		styleID, ok := styleByOutfit[event.OutfitID]
		if !ok || styleID == "" {
			continue
		}
		if event.ShowTimeMs <= 0 {
			continue
		}
		durations[styleID] += event.ShowTimeMs
		total += event.ShowTimeMs
	}
	if total == 0 {
		return
	}

	for styleID, duration := range durations {
		contributions[styleID] += (float64(duration) / float64(total)) * ch.quota
	}
}

// scoreFilterChannel counts the style values of each stored filter
// expression; every non-style predicate in the expression is ignored.
func scoreFilterChannel(ch *channel, contributions map[string]float64) {
	counts := make(map[string]int)
	total := 0
	for _, event := range ch.events {
		raw, _ := event.Payload[domain.PayloadFilterBy].(string)
		for _, styleID := range domain.StyleFilterValues(raw) {
			counts[styleID]++
			total++
		}
	}
	if total == 0 {
		return
	}

	for styleID, count := range counts {
		contributions[styleID] += (float64(count) / float64(total)) * ch.quota
	}
}
