package domain

// StyleAffinity is one entry of a viewer's style profile. Percentage is the
// sum of the per-channel contributions for that style; the percentages of a
// profile are not required to sum to 1.0.
type StyleAffinity struct {
	StyleID    string  `json:"style_id"`
	Percentage float64 `json:"percentage"`
}

// StyleAffinityProfile is computed fresh from current interactions on every
// call and never persisted. An empty profile means "no personalization data".
type StyleAffinityProfile []StyleAffinity

func (p StyleAffinityProfile) IsEmpty() bool {
	return len(p) == 0
}
