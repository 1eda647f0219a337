package usecase

import (
	"strings"

	"github.com/scorehub/scorehub/internal/domain/competition"
)

// SearchIndex filters the startup competition list by name. It is built once
// when the full list arrives; until then search is disabled and every query
// yields nothing.
type SearchIndex struct {
	ready        bool
	competitions []competition.Competition
}

func (idx *SearchIndex) Build(competitions []competition.Competition) {
	idx.competitions = competitions
	idx.ready = true
}

func (idx *SearchIndex) Ready() bool {
	return idx.ready
}

// Find looks a competition up by id in the index.
func (idx *SearchIndex) Find(id int64) (competition.Competition, bool) {
	for _, comp := range idx.competitions {
		if comp.ID == id {
			return comp, true
		}
	}
	return competition.Competition{}, false
}

// Search returns competitions whose name contains the query, case
// insensitively. An empty query returns an empty result, not the full list.
func (idx *SearchIndex) Search(query string) []competition.Competition {
	if !idx.ready || query == "" {
		return []competition.Competition{}
	}

	needle := strings.ToLower(query)
	out := make([]competition.Competition, 0)
	for _, comp := range idx.competitions {
		if strings.Contains(strings.ToLower(comp.Name), needle) {
			out = append(out, comp)
		}
	}
	return out
}
