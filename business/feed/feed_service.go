package feed

import (
	"context"
	"fmt"
	"math"
	"sort"
	"styleflame/domain"
	"styleflame/pkg/logger"
	"styleflame/pkg/metrics"
	"time"
)

// ---- Repository interfaces ----

type OutfitRepository interface {
	FindAll(ctx context.Context, orderBy string, limit int) ([]domain.Outfit, error)
	FindByStyle(ctx context.Context, styleID string, limit int) ([]domain.Outfit, error)
}

type ProfileProvider interface {
	GetStyleProfile(ctx context.Context, userID string) (domain.StyleAffinityProfile, error)
}

// ViewAssembler resolves outfits into their decorated per-viewer views.
type ViewAssembler interface {
	AssembleViews(ctx context.Context, viewerID string, outfits []domain.Outfit) ([]domain.OutfitView, error)
}

// ---- Usecase / Service ----

type FeedService struct {
	outfitRepo OutfitRepository
	profiles   ProfileProvider
	assembler  ViewAssembler
	maxOutfits int
	defaultOrd string
}

func NewFeedService(outfitRepo OutfitRepository, profiles ProfileProvider, assembler ViewAssembler, maxOutfits int, defaultOrder string) *FeedService {
	return &FeedService{
		outfitRepo: outfitRepo,
		profiles:   profiles,
		assembler:  assembler,
		maxOutfits: maxOutfits,
		defaultOrd: defaultOrder,
	}
}

// GetInspiration builds the personalized feed: the viewer's style affinity
// profile converts into per-style slot quotas over the feed size, each
// style contributes its best outfits up to the quota, and the combined set
// is re-sorted globally by the requested field. Without a usable profile
// the feed degrades to the plain listing.
func (s *FeedService) GetInspiration(ctx context.Context, viewerID, orderBy string) ([]domain.OutfitView, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if orderBy == "" {
		orderBy = s.defaultOrd
	}

	start := time.Now()

	profile, err := s.profiles.GetStyleProfile(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute style profile: %w", err)
	}

	outfits, personalized, err := s.collect(ctx, profile, orderBy)
	if err != nil {
		return nil, err
	}

	views, err := s.assembler.AssembleViews(ctx, viewerID, outfits)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble feed views: %w", err)
	}

	mode := "personalized"
	if !personalized {
		mode = "fallback"
	}
	metrics.FeedRequestsTotal.WithLabelValues(mode).Inc()
	metrics.FeedLatency.Observe(time.Since(start).Seconds())

	logger.Debug("inspiration_feed_built",
		"user_id", viewerID,
		"mode", mode,
		"outfits", len(views),
	)

	return views, nil
}

// collect gathers the feed candidates. Quotas round half-up; styles whose
// quota rounds to zero are skipped entirely.
func (s *FeedService) collect(ctx context.Context, profile domain.StyleAffinityProfile, orderBy string) ([]domain.Outfit, bool, error) {
	if profile.IsEmpty() {
		outfits, err := s.outfitRepo.FindAll(ctx, orderBy, s.maxOutfits)
		if err != nil {
			return nil, false, fmt.Errorf("failed to list outfits: %w", err)
		}
		return outfits, false, nil
	}

	var collected []domain.Outfit
	for _, affinity := range profile {
		quota := int(math.Round(affinity.Percentage * float64(s.maxOutfits)))
		if quota <= 0 {
			continue
		}

		outfits, err := s.outfitRepo.FindByStyle(ctx, affinity.StyleID, quota)
		if err != nil {
			return nil, false, fmt.Errorf("failed to fetch outfits for style %s: %w", affinity.StyleID, err)
		}
		collected = append(collected, outfits...)
	}

	// every quota rounded away, nothing personalized to show
	if len(collected) == 0 {
		outfits, err := s.outfitRepo.FindAll(ctx, orderBy, s.maxOutfits)
		if err != nil {
			return nil, false, fmt.Errorf("failed to list outfits: %w", err)
		}
		return outfits, false, nil
	}

	sortOutfits(collected, orderBy)

	return collected, true, nil
}

// sortOutfits re-sorts the combined per-style slices by the requested field
// descending, ties broken by unique name for a stable feed. Unknown fields
// fall back to the update time.
func sortOutfits(outfits []domain.Outfit, orderBy string) {
	key := func(o domain.Outfit) float64 {
		switch orderBy {
		case "createdAt":
			return float64(o.CreatedAt.UnixNano())
		case "votesCounter":
			return float64(o.VotesCounter)
		case "totalPrice":
			return o.TotalPrice
		default:
			return float64(o.UpdatedAt.UnixNano())
		}
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		ki, kj := key(outfits[i]), key(outfits[j])
		if ki != kj {
			return ki > kj
		}
		return outfits[i].UniqueName < outfits[j].UniqueName
	})
}
