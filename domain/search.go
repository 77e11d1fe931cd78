package domain

// PriceRange is one totalPrice tier. Matching is exclusive on the lower
// bound and inclusive on the upper one; a nil bound means open-ended.
type PriceRange struct {
	Min *float64
	Max *float64
}

// OutfitSearchQuery is the fully resolved search request handed to the
// store: free text, outfit-tier predicates and the article-tier predicates
// already translated to article IDs. Ephemeral.
type OutfitSearchQuery struct {
	Keywords    string
	OccasionIDs []string
	StyleIDs    []string
	PriceRanges []PriceRange

	// ArticleIDs is the OR-of-contains set resolved from article-tier
	// facets. MatchNoArticle forces an empty result: the viewer expressed
	// article filters that no article satisfies.
	ArticleIDs     []string
	MatchNoArticle bool

	OrderBy string
}
