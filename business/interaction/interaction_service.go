package interaction

import (
	"context"
	"fmt"
	"styleflame/domain"
	"styleflame/pkg/logger"
	"styleflame/pkg/metrics"
	"time"

	"gorm.io/datatypes"
)

// logTimeout bounds the detached write behind a fire-and-forget event.
const logTimeout = 10 * time.Second

// ---- Repository interfaces ----

type InteractionRepository interface {
	Append(ctx context.Context, interaction *domain.Interaction) error
	InsertUpvote(ctx context.Context, userID, outfitID string) (bool, error)
	DeleteUpvote(ctx context.Context, userID, outfitID string) (bool, error)
}

type OutfitRepository interface {
	FindByID(ctx context.Context, uniqueName string) (domain.Outfit, error)
	AddVoteDelta(ctx context.Context, uniqueName string, delta int) error
}

// ViewAssembler resolves outfits into their decorated per-viewer views.
type ViewAssembler interface {
	AssembleViews(ctx context.Context, viewerID string, outfits []domain.Outfit) ([]domain.OutfitView, error)
}

// ---- Usecase / Service ----

type InteractionService struct {
	interactionRepo InteractionRepository
	outfitRepo      OutfitRepository
	assembler       ViewAssembler
}

func NewInteractionService(interactionRepo InteractionRepository, outfitRepo OutfitRepository, assembler ViewAssembler) *InteractionService {
	return &InteractionService{
		interactionRepo: interactionRepo,
		outfitRepo:      outfitRepo,
		assembler:       assembler,
	}
}

// ---- Upvotes (synchronous, state-changing) ----

// UpvoteOutfit records the viewer's upvote and bumps the outfit's counter.
// A second upvote for the same outfit fails with domain.ErrAlreadyUpvoted
// and leaves the counter untouched.
func (s *InteractionService) UpvoteOutfit(ctx context.Context, userID, outfitID string) (domain.OutfitView, error) {
	if _, err := s.outfitRepo.FindByID(ctx, outfitID); err != nil {
		return domain.OutfitView{}, err
	}

	inserted, err := s.interactionRepo.InsertUpvote(ctx, userID, outfitID)
	if err != nil {
		return domain.OutfitView{}, err
	}
	if !inserted {
		return domain.OutfitView{}, domain.ErrAlreadyUpvoted
	}

	if err := s.outfitRepo.AddVoteDelta(ctx, outfitID, 1); err != nil {
		return domain.OutfitView{}, err
	}

	metrics.InteractionEventsTotal.WithLabelValues(domain.ActionOutfitUpvote).Inc()

	return s.outfitView(ctx, userID, outfitID)
}

// UnvoteOutfit removes the viewer's upvote and decrements the counter.
// Fails with domain.ErrNeverUpvoted when there is no upvote to remove.
func (s *InteractionService) UnvoteOutfit(ctx context.Context, userID, outfitID string) (domain.OutfitView, error) {
	if _, err := s.outfitRepo.FindByID(ctx, outfitID); err != nil {
		return domain.OutfitView{}, err
	}

	deleted, err := s.interactionRepo.DeleteUpvote(ctx, userID, outfitID)
	if err != nil {
		return domain.OutfitView{}, err
	}
	if !deleted {
		return domain.OutfitView{}, domain.ErrNeverUpvoted
	}

	if err := s.outfitRepo.AddVoteDelta(ctx, outfitID, -1); err != nil {
		return domain.OutfitView{}, err
	}

	return s.outfitView(ctx, userID, outfitID)
}

func (s *InteractionService) outfitView(ctx context.Context, userID, outfitID string) (domain.OutfitView, error) {
	outfit, err := s.outfitRepo.FindByID(ctx, outfitID)
	if err != nil {
		return domain.OutfitView{}, err
	}

	views, err := s.assembler.AssembleViews(ctx, userID, []domain.Outfit{outfit})
	if err != nil {
		return domain.OutfitView{}, err
	}

	return views[0], nil
}

// ---- Event logging (fire-and-forget) ----

func (s *InteractionService) LogOutfitOpen(userID, outfitID string) {
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionOutfitOpen, OutfitID: outfitID})
}

func (s *InteractionService) LogOutfitBuy(userID, outfitID string) {
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionOutfitBuy, OutfitID: outfitID})
}

func (s *InteractionService) LogOccasionOpen(userID, occasionID string) {
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionOccasionOpen, OccasionID: occasionID})
}

func (s *InteractionService) LogStyleOpen(userID, styleID string) {
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionStyleOpen, StyleID: styleID})
}

func (s *InteractionService) LogArticleOpen(userID, articleID string) {
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionArticleOpen, ArticleID: articleID})
}

func (s *InteractionService) LogArticleBuy(userID, articleID string) {
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionArticleBuy, ArticleID: articleID})
}

// LogOutfitShowTime records how long an outfit stayed on screen. Durations
// are validated synchronously so the caller learns about a bad payload.
func (s *InteractionService) LogOutfitShowTime(userID, outfitID string, showTimeMs int64) error {
	if showTimeMs <= 0 {
		return domain.ErrInvalidShowTime
	}
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionOutfitShowTime, OutfitID: outfitID, ShowTimeMs: showTimeMs})
	return nil
}

func (s *InteractionService) LogOutfitZoomShowTime(userID, outfitID string, showTimeMs int64) error {
	if showTimeMs <= 0 {
		return domain.ErrInvalidShowTime
	}
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionOutfitZoomShowTime, OutfitID: outfitID, ShowTimeMs: showTimeMs})
	return nil
}

func (s *InteractionService) LogArticleZoomShowTime(userID, articleID string, showTimeMs int64) error {
	if showTimeMs <= 0 {
		return domain.ErrInvalidShowTime
	}
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionArticleZoomShowTime, ArticleID: articleID, ShowTimeMs: showTimeMs})
	return nil
}

// LogSearch records the search request the viewer actually sent; the style
// profiling later mines the filterBy payload for style predicates.
func (s *InteractionService) LogSearch(userID, searchBy, filterBy, orderBy string) {
	payload := datatypes.JSONMap{}
	if searchBy != "" {
		payload[domain.PayloadSearchBy] = searchBy
	}
	if filterBy != "" {
		payload[domain.PayloadFilterBy] = filterBy
	}
	if orderBy != "" {
		payload[domain.PayloadOrderBy] = orderBy
	}
	if len(payload) == 0 {
		return
	}
	s.log(domain.Interaction{UserID: userID, Action: domain.ActionOutfitSearch, Payload: payload})
}

// LogInspirationSort records an explicit sort choice on the inspiration
// feed. Nothing is logged for the default order.
func (s *InteractionService) LogInspirationSort(userID, orderBy string) {
	if orderBy == "" {
		return
	}
	s.log(domain.Interaction{
		UserID:  userID,
		Action:  domain.ActionInspirationSort,
		Payload: datatypes.JSONMap{domain.PayloadOrderBy: orderBy},
	})
}

func (s *InteractionService) LogSearchSort(userID, orderBy string) {
	if orderBy == "" {
		return
	}
	s.log(domain.Interaction{
		UserID:  userID,
		Action:  domain.ActionSearchSort,
		Payload: datatypes.JSONMap{domain.PayloadOrderBy: orderBy},
	})
}

// log appends the event on a detached goroutine with its own deadline. The
// request that produced the event never waits for, or fails on, the write.
func (s *InteractionService) log(interaction domain.Interaction) {
	metrics.InteractionEventsTotal.WithLabelValues(interaction.Action).Inc()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), logTimeout)
		defer cancel()

		if err := s.interactionRepo.Append(ctx, &interaction); err != nil {
			logger.Error("Failed to log interaction",
				"action", interaction.Action,
				"user_id", interaction.UserID,
				"error", fmt.Errorf("append interaction: %w", err),
			)
		}
	}()
}
