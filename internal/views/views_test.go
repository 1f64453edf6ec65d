package views

import (
	"testing"
	"time"

	"github.com/routeburn/product-flow/internal/models"
)

func namedIdeas() []models.Idea {
	return []models.Idea{
		{Name: "Zebra", ValidationStatus: models.StatusScaling},
		{Name: "Alpha", ValidationStatus: models.StatusBacklog},
		{Name: "Beta", ValidationStatus: models.StatusFirstLevel},
	}
}

func TestSortIdeasByName(t *testing.T) {
	got := SortIdeas(namedIdeas(), SortName)
	want := []string{"Alpha", "Beta", "Zebra"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestSortIdeasByValidationStatus(t *testing.T) {
	got := SortIdeas(namedIdeas(), SortValidationStatus)
	want := []string{"Alpha", "Beta", "Zebra"} // backlog, firstLevel, scaling
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestSortIdeasUnknownStatusRanksLast(t *testing.T) {
	ideas := []models.Idea{
		{Name: "mystery", ValidationStatus: "archived"},
		{Name: "known", ValidationStatus: models.StatusFailed},
	}
	got := SortIdeas(ideas, SortValidationStatus)
	if got[0].Name != "known" || got[1].Name != "mystery" {
		t.Fatalf("unknown status must sort last: %v", got)
	}
}

func TestSortIdeasByAge(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ideas := []models.Idea{
		{Name: "old", CreatedAt: t0},
		{Name: "new", CreatedAt: t0.Add(48 * time.Hour)},
		{Name: "mid", CreatedAt: t0.Add(24 * time.Hour)},
	}

	newest := SortIdeas(ideas, SortAge)
	if newest[0].Name != "new" || newest[2].Name != "old" {
		t.Fatalf("age sort should be newest first: %v", newest)
	}

	oldest := SortIdeas(ideas, SortAgeOldest)
	if oldest[0].Name != "old" || oldest[2].Name != "new" {
		t.Fatalf("ageOldest sort should be oldest first: %v", oldest)
	}
}

func TestSortIdeasByUpvotesStableTies(t *testing.T) {
	ideas := []models.Idea{
		{Name: "a", Upvotes: 2},
		{Name: "b", Upvotes: 5},
		{Name: "c", Upvotes: 2},
	}
	got := SortIdeas(ideas, SortUpvotes)
	if got[0].Name != "b" {
		t.Fatalf("expected most upvoted first, got %s", got[0].Name)
	}
	// Ties keep input order: a before c.
	if got[1].Name != "a" || got[2].Name != "c" {
		t.Fatalf("tie order not stable: %v", got)
	}
}

func TestSortIdeasByIdeaNumberDescending(t *testing.T) {
	ideas := []models.Idea{
		{IdeaNumber: 2}, {IdeaNumber: 7}, {IdeaNumber: 4},
	}
	got := SortIdeas(ideas, SortIdeaNumber)
	if got[0].IdeaNumber != 7 || got[2].IdeaNumber != 2 {
		t.Fatalf("expected descending numbers, got %v", got)
	}
}

func TestSortIdeasDoesNotMutateInput(t *testing.T) {
	ideas := namedIdeas()
	_ = SortIdeas(ideas, SortName)
	if ideas[0].Name != "Zebra" {
		t.Fatal("input slice was mutated")
	}
}

func TestFilterIdeas(t *testing.T) {
	ideas := namedIdeas()

	got := FilterIdeas(ideas, FilterField(models.StatusFirstLevel))
	if len(got) != 1 || got[0].Name != "Beta" {
		t.Fatalf("expected only Beta, got %v", got)
	}

	all := FilterIdeas(ideas, FilterAll)
	if len(all) != len(ideas) {
		t.Fatalf("filter all must pass everything: %d != %d", len(all), len(ideas))
	}
	for i := range all {
		if all[i].Name != ideas[i].Name {
			t.Fatal("filter all must preserve order")
		}
	}
}

func TestGroupByValidationStatusDropsUnknown(t *testing.T) {
	ideas := []models.Idea{
		{Name: "b", ValidationStatus: models.StatusBacklog},
		{Name: "f1", ValidationStatus: models.StatusFirstLevel},
		{Name: "f2", ValidationStatus: models.StatusSecondLevel},
		{Name: "s", ValidationStatus: models.StatusScaling},
		{Name: "x", ValidationStatus: models.StatusFailed},
		{Name: "lost", ValidationStatus: ""},
	}

	groups := GroupByValidationStatus(ideas)
	if len(groups) != 5 {
		t.Fatalf("expected exactly 5 buckets, got %d", len(groups))
	}
	total := 0
	for _, s := range models.KnownStatuses {
		bucket, ok := groups[s]
		if !ok {
			t.Fatalf("missing bucket %s", s)
		}
		if len(bucket) != 1 {
			t.Fatalf("bucket %s: expected 1 idea, got %d", s, len(bucket))
		}
		total += len(bucket)
	}
	// The null-status idea appears in no bucket.
	if total != 5 {
		t.Fatalf("expected 5 grouped ideas, got %d", total)
	}
}

func TestParseSortAndFilterFallbacks(t *testing.T) {
	if ParseSortField("bogus") != DefaultSort {
		t.Fatal("unknown sort must fall back to default")
	}
	if ParseSortField("upvotes") != SortUpvotes {
		t.Fatal("known sort must parse")
	}
	if ParseFilterField("bogus") != FilterAll {
		t.Fatal("unknown filter must fall back to all")
	}
	if ParseFilterField("failed") != FilterField(models.StatusFailed) {
		t.Fatal("known filter must parse")
	}
}
