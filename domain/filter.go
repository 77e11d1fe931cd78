package domain

import (
	"fmt"
	"strings"
)

// Filter expression grammar, e.g.
// "occasionID $eq wedding-guest;weekend $and styleID $eq casual;boho".
// Top-level predicates are ANDed; the value list of a predicate is ORed.
const (
	FilterAndOperator = " $and "
	FilterEqOperator  = " $eq "
	filterValueSep    = ";"
)

// Filter fields recognized by the search path. occasionID, styleID and
// totalPrice apply to the outfit row; color, wearability and brand must first
// be resolved against the articles collection.
const (
	FilterFieldOccasion    = "occasionID"
	FilterFieldStyle       = "styleID"
	FilterFieldTotalPrice  = "totalPrice"
	FilterFieldColor       = "color"
	FilterFieldWearability = "wearability"
	FilterFieldBrand       = "brand"
)

// FilterPredicate is one parsed "field $eq v1;v2;..." clause. Empty values
// are dropped during parsing.
type FilterPredicate struct {
	Field  string
	Values []string
}

// FilterExpression is the ordered list of predicates of one filterBy string.
// Ephemeral, never persisted.
type FilterExpression []FilterPredicate

// ParseFilterExpression splits a raw filterBy string into predicates. A
// clause without the equality operator is a validation error; unknown fields
// are kept and left to the consumer to ignore.
func ParseFilterExpression(raw string) (FilterExpression, error) {
	if raw == "" {
		return nil, nil
	}

	var expr FilterExpression
	for _, clause := range strings.Split(raw, FilterAndOperator) {
		parts := strings.SplitN(clause, FilterEqOperator, 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("%w: clause %q", ErrInvalidFilterExpression, clause)
		}

		var values []string
		for _, v := range strings.Split(parts[1], filterValueSep) {
			if v != "" {
				values = append(values, v)
			}
		}

		expr = append(expr, FilterPredicate{
			Field:  strings.TrimSpace(parts[0]),
			Values: values,
		})
	}

	return expr, nil
}

// ValuesFor collects the values of every predicate on the given field.
func (e FilterExpression) ValuesFor(field string) []string {
	var values []string
	for _, p := range e {
		if p.Field == field {
			values = append(values, p.Values...)
		}
	}
	return values
}

// StyleFilterValues extracts the style-selecting values of a raw filterBy
// string, ignoring every other predicate. Malformed expressions yield
// nothing; the profiling path must not fail on a bad historical event.
func StyleFilterValues(raw string) []string {
	expr, err := ParseFilterExpression(raw)
	if err != nil {
		return nil
	}
	return expr.ValuesFor(FilterFieldStyle)
}
