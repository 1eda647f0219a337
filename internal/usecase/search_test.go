package usecase

import (
	"testing"

	"github.com/scorehub/scorehub/internal/domain/competition"
)

func indexFixture() *SearchIndex {
	idx := &SearchIndex{}
	idx.Build([]competition.Competition{
		{ID: 2021, Name: "Premier League"},
		{ID: 2016, Name: "Championship"},
		{ID: 2013, Name: "Campeonato Brasileiro Série A"},
		{ID: 2001, Name: "UEFA Champions League"},
	})
	return idx
}

func TestSearchEmptyQueryYieldsEmpty(t *testing.T) {
	idx := indexFixture()
	if got := idx.Search(""); len(got) != 0 {
		t.Fatalf("Search(\"\") = %v, want empty", got)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	idx := indexFixture()

	got := idx.Search("CHAMPIONS")
	if len(got) != 1 || got[0].ID != 2001 {
		t.Fatalf("Search(CHAMPIONS) = %v, want UEFA Champions League only", got)
	}

	got = idx.Search("champion")
	if len(got) != 2 {
		t.Fatalf("Search(champion) = %v, want Championship and UEFA Champions League", got)
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	idx := indexFixture()

	first := idx.Search("league")
	second := idx.Search("league")
	if len(first) != len(second) {
		t.Fatalf("repeated search differs: %d vs %d results", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("repeated search differs at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSearchDisabledBeforeBuild(t *testing.T) {
	idx := &SearchIndex{}
	if idx.Ready() {
		t.Fatal("Ready() = true before Build")
	}
	if got := idx.Search("premier"); len(got) != 0 {
		t.Fatalf("Search before Build = %v, want empty", got)
	}
}
