package search

import "styleflame/domain"

func ptr(v float64) *float64 { return &v }

// priceTiers maps the frontend tier labels onto totalPrice ranges. Matching
// is exclusive on the lower bound and inclusive on the upper one; priceTier5
// is open-ended above 1000.
var priceTiers = map[string]domain.PriceRange{
	"priceTier1": {Min: ptr(0), Max: ptr(100)},
	"priceTier2": {Min: ptr(100), Max: ptr(300)},
	"priceTier3": {Min: ptr(300), Max: ptr(500)},
	"priceTier4": {Min: ptr(500), Max: ptr(1000)},
	"priceTier5": {Min: ptr(1000)},
}

// resolvePriceTiers translates tier labels to ranges, dropping unknown ones.
func resolvePriceTiers(labels []string) []domain.PriceRange {
	var ranges []domain.PriceRange
	for _, label := range labels {
		if tier, ok := priceTiers[label]; ok {
			ranges = append(ranges, tier)
		}
	}
	return ranges
}
