// Package views builds the read-side projections of a product's idea
// backlog: filtering, sorting, and funnel grouping. The list page, the
// funnel page, and the MCP tools all consume these functions, so they are
// pure and deterministic: identical input always yields identical output,
// and the input slice is never mutated.
package views

import (
	"sort"

	"github.com/routeburn/product-flow/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects a comparator for SortIdeas. The values double as the
// `sort` URL query parameter.
type SortField string

const (
	SortName             SortField = "name"
	SortValidationStatus SortField = "validationStatus"
	SortAge              SortField = "age"
	SortAgeOldest        SortField = "ageOldest"
	SortUpvotes          SortField = "upvotes"
	SortIdeaNumber       SortField = "ideaNumber"
)

// DefaultSort is what the list page falls back to.
const DefaultSort = SortAge

// FilterField selects a status filter. "all" passes everything through. The
// values double as the `filter` URL query parameter.
type FilterField string

// FilterAll passes every idea through unchanged.
const FilterAll FilterField = "all"

// ParseSortField maps a query parameter onto a sort field, falling back to
// the default for unknown values.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortName, SortValidationStatus, SortAge, SortAgeOldest, SortUpvotes, SortIdeaNumber:
		return SortField(s)
	}
	return DefaultSort
}

// ParseFilterField maps a query parameter onto a filter, falling back to
// "all" for unknown values.
func ParseFilterField(s string) FilterField {
	if s == string(FilterAll) {
		return FilterAll
	}
	if models.ValidationStatus(s).Known() {
		return FilterField(s)
	}
	return FilterAll
}

// FilterIdeas keeps only ideas whose status exactly matches the filter.
// No partial matching; "all" returns a copy of the input unchanged.
func FilterIdeas(ideas []models.Idea, filter FilterField) []models.Idea {
	out := make([]models.Idea, 0, len(ideas))
	if filter == FilterAll {
		return append(out, ideas...)
	}
	for _, idea := range ideas {
		if idea.ValidationStatus == models.ValidationStatus(filter) {
			out = append(out, idea)
		}
	}
	return out
}

var nameCollator = collate.New(language.English)

// SortIdeas returns a sorted copy of ideas. All sorts are stable: ties keep
// input order, which means upvote order across repeated fetches is only as
// stable as the store's result order.
func SortIdeas(ideas []models.Idea, field SortField) []models.Idea {
	out := append(make([]models.Idea, 0, len(ideas)), ideas...)

	switch field {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortValidationStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ValidationStatus.Rank() < out[j].ValidationStatus.Rank()
		})
	case SortAge:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortAgeOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortUpvotes:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Upvotes > out[j].Upvotes
		})
	case SortIdeaNumber:
		// Numbers are assigned monotonically, so descending means
		// newest-created first.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IdeaNumber > out[j].IdeaNumber
		})
	}
	return out
}

// GroupByValidationStatus partitions ideas into the five known funnel
// buckets. Every bucket is present in the result even when empty. Ideas
// with an unrecognized or empty status land in no bucket at all; there is
// deliberately no catch-all.
func GroupByValidationStatus(ideas []models.Idea) map[models.ValidationStatus][]models.Idea {
	groups := make(map[models.ValidationStatus][]models.Idea, len(models.KnownStatuses))
	for _, s := range models.KnownStatuses {
		groups[s] = []models.Idea{}
	}
	for _, idea := range ideas {
		if idea.ValidationStatus.Known() {
			groups[idea.ValidationStatus] = append(groups[idea.ValidationStatus], idea)
		}
	}
	return groups
}
