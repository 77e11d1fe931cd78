package outfit

import (
	"context"
	"fmt"
	"strings"
	"styleflame/domain"
	"styleflame/pkg/logger"
)

// ---- Repository interfaces ----

type OutfitRepository interface {
	Create(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error
	FindByID(ctx context.Context, uniqueName string) (domain.Outfit, error)
	FindAll(ctx context.Context, orderBy string, limit int) ([]domain.Outfit, error)
	Update(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error
	Delete(ctx context.Context, uniqueName string) error
	ArticleLinks(ctx context.Context, outfitIDs []string) ([]domain.OutfitArticle, error)
}

type OccasionRepository interface {
	FindByID(ctx context.Context, uniqueName string) (domain.Occasion, error)
	FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Occasion, error)
}

type StyleRepository interface {
	FindByID(ctx context.Context, uniqueName string) (domain.Style, error)
	FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Style, error)
}

type StylistRepository interface {
	FindByID(ctx context.Context, uniqueName string) (domain.Stylist, error)
	FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Stylist, error)
}

type ArticleRepository interface {
	FindByIDs(ctx context.Context, uniqueNames []string) ([]domain.Article, error)
}

type UpvoteRepository interface {
	UpvotedSet(ctx context.Context, userID string, outfitIDs []string) (map[string]bool, error)
}

// TextIndexer maintains the denormalized searchable text of an outfit.
type TextIndexer interface {
	UpsertOutfitText(ctx context.Context, text *domain.OutfitText) error
}

// ---- Usecase / Service ----

type OutfitService struct {
	outfitRepo   OutfitRepository
	occasionRepo OccasionRepository
	styleRepo    StyleRepository
	stylistRepo  StylistRepository
	articleRepo  ArticleRepository
	upvoteRepo   UpvoteRepository
	textIndexer  TextIndexer
}

func NewOutfitService(
	outfitRepo OutfitRepository,
	occasionRepo OccasionRepository,
	styleRepo StyleRepository,
	stylistRepo StylistRepository,
	articleRepo ArticleRepository,
	upvoteRepo UpvoteRepository,
	textIndexer TextIndexer,
) *OutfitService {
	return &OutfitService{
		outfitRepo:   outfitRepo,
		occasionRepo: occasionRepo,
		styleRepo:    styleRepo,
		stylistRepo:  stylistRepo,
		articleRepo:  articleRepo,
		upvoteRepo:   upvoteRepo,
		textIndexer:  textIndexer,
	}
}

func (s *OutfitService) GetOutfitByID(ctx context.Context, viewerID, uniqueName string) (domain.OutfitView, error) {
	outfit, err := s.outfitRepo.FindByID(ctx, uniqueName)
	if err != nil {
		return domain.OutfitView{}, err
	}

	views, err := s.AssembleViews(ctx, viewerID, []domain.Outfit{outfit})
	if err != nil {
		return domain.OutfitView{}, err
	}

	return views[0], nil
}

func (s *OutfitService) GetAllOutfits(ctx context.Context, viewerID, orderBy string) ([]domain.OutfitView, error) {
	outfits, err := s.outfitRepo.FindAll(ctx, orderBy, 0)
	if err != nil {
		return nil, err
	}

	return s.AssembleViews(ctx, viewerID, outfits)
}

// AssembleViews decorates outfits with their resolved reference data and the
// viewer's upvote state. Dangling references resolve to nil rather than an
// error; a broken catalog row must not take the feed down.
func (s *OutfitService) AssembleViews(ctx context.Context, viewerID string, outfits []domain.Outfit) ([]domain.OutfitView, error) {
	if len(outfits) == 0 {
		return []domain.OutfitView{}, nil
	}

	outfitIDs := make([]string, 0, len(outfits))
	occasionIDs := make(map[string]struct{})
	styleIDs := make(map[string]struct{})
	stylistIDs := make(map[string]struct{})
	for _, o := range outfits {
		outfitIDs = append(outfitIDs, o.UniqueName)
		if o.OccasionID != "" {
			occasionIDs[o.OccasionID] = struct{}{}
		}
		if o.StyleID != "" {
			styleIDs[o.StyleID] = struct{}{}
		}
		if o.StylistID != "" {
			stylistIDs[o.StylistID] = struct{}{}
		}
	}

	links, err := s.outfitRepo.ArticleLinks(ctx, outfitIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load outfit articles: %w", err)
	}

	articleIDsByOutfit := make(map[string][]string)
	articleIDs := make(map[string]struct{})
	for _, link := range links {
		articleIDsByOutfit[link.OutfitID] = append(articleIDsByOutfit[link.OutfitID], link.ArticleID)
		articleIDs[link.ArticleID] = struct{}{}
	}

	occasions, err := s.occasionRepo.FindByIDs(ctx, keys(occasionIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load occasions: %w", err)
	}
	styles, err := s.styleRepo.FindByIDs(ctx, keys(styleIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load styles: %w", err)
	}
	stylists, err := s.stylistRepo.FindByIDs(ctx, keys(stylistIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load stylists: %w", err)
	}
	articles, err := s.articleRepo.FindByIDs(ctx, keys(articleIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}

	upvoted := map[string]bool{}
	if viewerID != "" {
		upvoted, err = s.upvoteRepo.UpvotedSet(ctx, viewerID, outfitIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load upvote state: %w", err)
		}
	}

	occasionByID := make(map[string]domain.Occasion, len(occasions))
	for _, o := range occasions {
		occasionByID[o.UniqueName] = o
	}
	styleByID := make(map[string]domain.Style, len(styles))
	for _, st := range styles {
		styleByID[st.UniqueName] = st
	}
	stylistByID := make(map[string]domain.Stylist, len(stylists))
	for _, st := range stylists {
		stylistByID[st.UniqueName] = st
	}
	articleByID := make(map[string]domain.Article, len(articles))
	for _, a := range articles {
		articleByID[a.UniqueName] = a
	}

	views := make([]domain.OutfitView, 0, len(outfits))
	for _, o := range outfits {
		view := domain.OutfitView{
			Outfit:     o,
			ArticleIDs: articleIDsByOutfit[o.UniqueName],
			IsUpvoted:  upvoted[o.UniqueName],
			Articles:   []domain.Article{},
		}
		if occ, ok := occasionByID[o.OccasionID]; ok {
			view.Occasion = &occ
		}
		if st, ok := styleByID[o.StyleID]; ok {
			view.Style = &st
		}
		if st, ok := stylistByID[o.StylistID]; ok {
			view.Stylist = &st
		}
		for _, articleID := range view.ArticleIDs {
			if a, ok := articleByID[articleID]; ok {
				view.Articles = append(view.Articles, a)
			}
		}
		views = append(views, view)
	}

	return views, nil
}

// CreateOutfit validates the reference IDs, persists the outfit together
// with its article links and rebuilds the searchable text row.
func (s *OutfitService) CreateOutfit(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error {
	if err := s.validateReferences(ctx, outfit, articleIDs); err != nil {
		return err
	}

	if err := s.outfitRepo.Create(ctx, outfit, articleIDs); err != nil {
		return err
	}

	s.reindex(ctx, outfit.UniqueName)
	return nil
}

func (s *OutfitService) UpdateOutfit(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error {
	if err := s.validateReferences(ctx, outfit, articleIDs); err != nil {
		return err
	}

	if err := s.outfitRepo.Update(ctx, outfit, articleIDs); err != nil {
		return err
	}

	s.reindex(ctx, outfit.UniqueName)
	return nil
}

func (s *OutfitService) DeleteOutfit(ctx context.Context, uniqueName string) error {
	return s.outfitRepo.Delete(ctx, uniqueName)
}

// validateReferences rejects writes that point at occasions, styles,
// stylists or articles that do not exist.
func (s *OutfitService) validateReferences(ctx context.Context, outfit *domain.Outfit, articleIDs []string) error {
	if outfit.OccasionID != "" {
		if _, err := s.occasionRepo.FindByID(ctx, outfit.OccasionID); err != nil {
			return err
		}
	}
	if outfit.StyleID != "" {
		if _, err := s.styleRepo.FindByID(ctx, outfit.StyleID); err != nil {
			return err
		}
	}
	if outfit.StylistID != "" {
		if _, err := s.stylistRepo.FindByID(ctx, outfit.StylistID); err != nil {
			return err
		}
	}
	if len(articleIDs) > 0 {
		articles, err := s.articleRepo.FindByIDs(ctx, articleIDs)
		if err != nil {
			return err
		}
		if len(articles) != len(articleIDs) {
			return domain.ErrArticleNotFound
		}
	}
	return nil
}

// reindex rebuilds the outfit's searchable text after a write. Indexing
// failures are logged, not surfaced; the write already succeeded.
func (s *OutfitService) reindex(ctx context.Context, uniqueName string) {
	text, err := s.buildSearchText(ctx, uniqueName)
	if err != nil {
		logger.Error("Failed to build outfit search text", "outfit_id", uniqueName, "error", err)
		return
	}

	if err := s.textIndexer.UpsertOutfitText(ctx, text); err != nil {
		logger.Error("Failed to index outfit text", "outfit_id", uniqueName, "error", err)
	}
}

// buildSearchText flattens the outfit and its reference data into one
// searchable string.
func (s *OutfitService) buildSearchText(ctx context.Context, uniqueName string) (*domain.OutfitText, error) {
	outfit, err := s.outfitRepo.FindByID(ctx, uniqueName)
	if err != nil {
		return nil, err
	}

	views, err := s.AssembleViews(ctx, "", []domain.Outfit{outfit})
	if err != nil {
		return nil, err
	}
	view := views[0]

	var parts []string
	add := func(v string) {
		if v != "" {
			parts = append(parts, v)
		}
	}

	add(view.Name)
	if view.Occasion != nil {
		add(view.Occasion.Name)
	}
	if view.Style != nil {
		add(view.Style.Name)
	}
	if view.Stylist != nil {
		add(view.Stylist.Name)
	}
	for _, article := range view.Articles {
		add(article.Name)
		add(article.Brand)
		add(article.Color)
		add(article.Wearability)
		add(article.Details)
	}

	return &domain.OutfitText{
		OutfitID:   uniqueName,
		SearchText: strings.Join(parts, " "),
	}, nil
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
