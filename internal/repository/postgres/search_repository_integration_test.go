//go:build integration

package postgres

import (
	"context"
	"os"
	"styleflame/domain"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the Postgres instance named by TEST_DATABASE_DSN,
// e.g. "host=localhost port=5432 user=postgres password=postgres
// dbname=styleflame_test sslmode=disable". The test is skipped when the
// variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	if err := db.AutoMigrate(&domain.Outfit{}, &domain.OutfitText{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedSearchableOutfit(t *testing.T, db *gorm.DB, uniqueName, searchText string, votes int64) {
	t.Helper()

	now := time.Now()
	outfit := domain.Outfit{
		UniqueName:   uniqueName,
		Name:         uniqueName,
		OccasionID:   "it-occasion",
		StyleID:      "it-style",
		StylistID:    "it-stylist",
		TotalPrice:   150,
		Currency:     "EUR",
		VotesCounter: votes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(&outfit).Error; err != nil {
		t.Fatalf("failed to seed outfit %s: %v", uniqueName, err)
	}
	text := domain.OutfitText{
		OutfitID:   uniqueName,
		SearchText: searchText,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Create(&text).Error; err != nil {
		t.Fatalf("failed to seed outfit text %s: %v", uniqueName, err)
	}
	t.Cleanup(func() {
		db.Delete(&domain.OutfitText{}, "outfit_id = ?", uniqueName)
		db.Delete(&domain.Outfit{}, "unique_name = ?", uniqueName)
	})
}

// Keyword searches must come back in full-text relevance order even when the
// caller asks for a different order field.
func TestSearchRepository_KeywordRelevanceOverridesOrderBy(t *testing.T) {
	db := openTestDB(t)
	repo := NewSearchRepository(db)

	// the best textual match carries the fewest votes, so a votesCounter
	// ordering would invert the expected result
	seedSearchableOutfit(t, db, "it-rank-best",
		"summer dress linen summer dress light and breezy summer dress", 1)
	seedSearchableOutfit(t, db, "it-rank-weak",
		"casual summer dress with sneakers", 100)
	seedSearchableOutfit(t, db, "it-rank-miss",
		"wool winter coat with boots", 1000)

	outfits, err := repo.Search(context.Background(), domain.OutfitSearchQuery{
		Keywords: "summer dress",
		OrderBy:  "votesCounter",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, o := range outfits {
		if o.UniqueName == "it-rank-best" || o.UniqueName == "it-rank-weak" || o.UniqueName == "it-rank-miss" {
			got = append(got, o.UniqueName)
		}
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 matching outfits, got %v", got)
	}
	if got[0] != "it-rank-best" || got[1] != "it-rank-weak" {
		t.Errorf("expected relevance order [it-rank-best it-rank-weak], got %v", got)
	}
	for _, name := range got {
		if name == "it-rank-miss" {
			t.Error("non-matching outfit must not be returned")
		}
	}
}

// Without keywords the requested order field applies.
func TestSearchRepository_OrderByAppliesWithoutKeywords(t *testing.T) {
	db := openTestDB(t)
	repo := NewSearchRepository(db)

	seedSearchableOutfit(t, db, "it-order-low", "plain tee", 5)
	seedSearchableOutfit(t, db, "it-order-high", "plain shirt", 50)

	outfits, err := repo.Search(context.Background(), domain.OutfitSearchQuery{
		StyleIDs: []string{"it-style"},
		OrderBy:  "votesCounter",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, o := range outfits {
		if o.UniqueName == "it-order-low" || o.UniqueName == "it-order-high" {
			got = append(got, o.UniqueName)
		}
	}

	if len(got) != 2 || got[0] != "it-order-high" || got[1] != "it-order-low" {
		t.Errorf("expected votesCounter DESC order [it-order-high it-order-low], got %v", got)
	}
}
