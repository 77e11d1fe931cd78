//go:build !integration

package outfit

import (
	"context"
	"errors"
	"strings"
	"styleflame/domain"
	"testing"
)

type fakeOutfitRepo struct {
	outfits map[string]domain.Outfit
	links   map[string][]string
	created *domain.Outfit
}

func (f *fakeOutfitRepo) Create(_ context.Context, outfit *domain.Outfit, articleIDs []string) error {
	f.created = outfit
	f.outfits[outfit.UniqueName] = *outfit
	f.links[outfit.UniqueName] = articleIDs
	return nil
}

func (f *fakeOutfitRepo) FindByID(_ context.Context, uniqueName string) (domain.Outfit, error) {
	o, ok := f.outfits[uniqueName]
	if !ok {
		return domain.Outfit{}, domain.ErrOutfitNotFound
	}
	return o, nil
}

func (f *fakeOutfitRepo) FindAll(_ context.Context, _ string, _ int) ([]domain.Outfit, error) {
	var out []domain.Outfit
	for _, o := range f.outfits {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOutfitRepo) Update(_ context.Context, outfit *domain.Outfit, articleIDs []string) error {
	if _, ok := f.outfits[outfit.UniqueName]; !ok {
		return domain.ErrOutfitNotFound
	}
	f.outfits[outfit.UniqueName] = *outfit
	if articleIDs != nil {
		f.links[outfit.UniqueName] = articleIDs
	}
	return nil
}

func (f *fakeOutfitRepo) Delete(_ context.Context, uniqueName string) error {
	if _, ok := f.outfits[uniqueName]; !ok {
		return domain.ErrOutfitNotFound
	}
	delete(f.outfits, uniqueName)
	delete(f.links, uniqueName)
	return nil
}

func (f *fakeOutfitRepo) ArticleLinks(_ context.Context, outfitIDs []string) ([]domain.OutfitArticle, error) {
	var links []domain.OutfitArticle
	for _, outfitID := range outfitIDs {
		for _, articleID := range f.links[outfitID] {
			links = append(links, domain.OutfitArticle{OutfitID: outfitID, ArticleID: articleID})
		}
	}
	return links, nil
}

type fakeOccasionRepo struct{ occasions map[string]domain.Occasion }

func (f *fakeOccasionRepo) FindByID(_ context.Context, uniqueName string) (domain.Occasion, error) {
	o, ok := f.occasions[uniqueName]
	if !ok {
		return domain.Occasion{}, domain.ErrOccasionNotFound
	}
	return o, nil
}

func (f *fakeOccasionRepo) FindByIDs(_ context.Context, uniqueNames []string) ([]domain.Occasion, error) {
	var out []domain.Occasion
	for _, name := range uniqueNames {
		if o, ok := f.occasions[name]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeStyleRepo struct{ styles map[string]domain.Style }

func (f *fakeStyleRepo) FindByID(_ context.Context, uniqueName string) (domain.Style, error) {
	s, ok := f.styles[uniqueName]
	if !ok {
		return domain.Style{}, domain.ErrStyleNotFound
	}
	return s, nil
}

func (f *fakeStyleRepo) FindByIDs(_ context.Context, uniqueNames []string) ([]domain.Style, error) {
	var out []domain.Style
	for _, name := range uniqueNames {
		if s, ok := f.styles[name]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeStylistRepo struct{ stylists map[string]domain.Stylist }

func (f *fakeStylistRepo) FindByID(_ context.Context, uniqueName string) (domain.Stylist, error) {
	s, ok := f.stylists[uniqueName]
	if !ok {
		return domain.Stylist{}, domain.ErrStylistNotFound
	}
	return s, nil
}

func (f *fakeStylistRepo) FindByIDs(_ context.Context, uniqueNames []string) ([]domain.Stylist, error) {
	var out []domain.Stylist
	for _, name := range uniqueNames {
		if s, ok := f.stylists[name]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeArticleRepo struct{ articles map[string]domain.Article }

func (f *fakeArticleRepo) FindByIDs(_ context.Context, uniqueNames []string) ([]domain.Article, error) {
	var out []domain.Article
	for _, name := range uniqueNames {
		if a, ok := f.articles[name]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeUpvoteRepo struct{ upvoted map[string]bool }

func (f *fakeUpvoteRepo) UpvotedSet(_ context.Context, _ string, outfitIDs []string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, id := range outfitIDs {
		if f.upvoted[id] {
			out[id] = true
		}
	}
	return out, nil
}

type fakeTextIndexer struct{ texts map[string]string }

func (f *fakeTextIndexer) UpsertOutfitText(_ context.Context, text *domain.OutfitText) error {
	f.texts[text.OutfitID] = text.SearchText
	return nil
}

func newFixture() (*OutfitService, *fakeOutfitRepo, *fakeTextIndexer) {
	outfitRepo := &fakeOutfitRepo{
		outfits: map[string]domain.Outfit{
			"summer-look": {
				UniqueName: "summer-look",
				Name:       "Summer Look",
				OccasionID: "weekend",
				StyleID:    "casual",
				StylistID:  "jamie",
			},
		},
		links: map[string][]string{"summer-look": {"denim-jacket", "white-tee"}},
	}
	occasionRepo := &fakeOccasionRepo{occasions: map[string]domain.Occasion{
		"weekend": {UniqueName: "weekend", Name: "Weekend"},
	}}
	styleRepo := &fakeStyleRepo{styles: map[string]domain.Style{
		"casual": {UniqueName: "casual", Name: "Casual"},
	}}
	stylistRepo := &fakeStylistRepo{stylists: map[string]domain.Stylist{
		"jamie": {UniqueName: "jamie", Name: "Jamie"},
	}}
	articleRepo := &fakeArticleRepo{articles: map[string]domain.Article{
		"denim-jacket": {UniqueName: "denim-jacket", Name: "Denim Jacket", Brand: "acme", Color: "blue", Wearability: "outerwear"},
		"white-tee":    {UniqueName: "white-tee", Name: "White Tee", Brand: "basics", Color: "white", Wearability: "top"},
	}}
	upvoteRepo := &fakeUpvoteRepo{upvoted: map[string]bool{"summer-look": true}}
	indexer := &fakeTextIndexer{texts: make(map[string]string)}

	svc := NewOutfitService(outfitRepo, occasionRepo, styleRepo, stylistRepo, articleRepo, upvoteRepo, indexer)
	return svc, outfitRepo, indexer
}

func TestGetOutfitByID_DecoratesView(t *testing.T) {
	svc, _, _ := newFixture()

	view, err := svc.GetOutfitByID(context.Background(), "u1", "summer-look")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Occasion == nil || view.Occasion.Name != "Weekend" {
		t.Errorf("occasion not resolved: %+v", view.Occasion)
	}
	if view.Style == nil || view.Style.Name != "Casual" {
		t.Errorf("style not resolved: %+v", view.Style)
	}
	if view.Stylist == nil || view.Stylist.Name != "Jamie" {
		t.Errorf("stylist not resolved: %+v", view.Stylist)
	}
	if len(view.Articles) != 2 {
		t.Errorf("expected 2 articles, got %d", len(view.Articles))
	}
	if !view.IsUpvoted {
		t.Error("expected IsUpvoted for the viewer")
	}
}

func TestAssembleViews_DanglingReferencesResolveToNil(t *testing.T) {
	svc, repo, _ := newFixture()
	repo.outfits["orphan"] = domain.Outfit{
		UniqueName: "orphan",
		OccasionID: "gone",
		StyleID:    "gone",
	}

	views, err := svc.AssembleViews(context.Background(), "", []domain.Outfit{repo.outfits["orphan"]})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if views[0].Occasion != nil || views[0].Style != nil {
		t.Errorf("dangling references must resolve to nil, got %+v", views[0])
	}
}

func TestAssembleViews_AnonymousViewerNeverUpvoted(t *testing.T) {
	svc, repo, _ := newFixture()

	views, err := svc.AssembleViews(context.Background(), "", []domain.Outfit{repo.outfits["summer-look"]})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if views[0].IsUpvoted {
		t.Error("anonymous viewer must not see an upvote decoration")
	}
}

func TestCreateOutfit_RejectsUnknownReferences(t *testing.T) {
	svc, _, _ := newFixture()

	err := svc.CreateOutfit(context.Background(), &domain.Outfit{
		UniqueName: "new-look",
		OccasionID: "no-such-occasion",
	}, nil)
	if !errors.Is(err, domain.ErrOccasionNotFound) {
		t.Fatalf("expected ErrOccasionNotFound, got %v", err)
	}
}

func TestCreateOutfit_RejectsUnknownArticle(t *testing.T) {
	svc, _, _ := newFixture()

	err := svc.CreateOutfit(context.Background(), &domain.Outfit{
		UniqueName: "new-look",
	}, []string{"denim-jacket", "no-such-article"})
	if !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestCreateOutfit_RebuildsSearchText(t *testing.T) {
	svc, _, indexer := newFixture()

	err := svc.CreateOutfit(context.Background(), &domain.Outfit{
		UniqueName: "city-look",
		Name:       "City Look",
		OccasionID: "weekend",
		StyleID:    "casual",
	}, []string{"denim-jacket"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := indexer.texts["city-look"]
	for _, want := range []string{"City Look", "Weekend", "Casual", "Denim Jacket", "acme", "blue"} {
		if !strings.Contains(text, want) {
			t.Errorf("search text missing %q: %q", want, text)
		}
	}
}

func TestDeleteOutfit_UnknownOutfit(t *testing.T) {
	svc, _, _ := newFixture()

	if err := svc.DeleteOutfit(context.Background(), "no-such-outfit"); !errors.Is(err, domain.ErrOutfitNotFound) {
		t.Fatalf("expected ErrOutfitNotFound, got %v", err)
	}
}
