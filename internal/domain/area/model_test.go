package area

import (
	"reflect"
	"testing"
)

func TestSplitFeatured(t *testing.T) {
	countries := []Area{
		{ID: 2072, Name: "England"},
		{ID: 2270, Name: "Scotland"},
		{ID: 2224, Name: "Spain"},
		{ID: 2247, Name: "Wales"},
	}

	t.Run("europe pulls its shortlist forward", func(t *testing.T) {
		featured, rest := SplitFeatured("Europe", countries)
		if got := names(featured); !reflect.DeepEqual(got, []string{"England", "Spain"}) {
			t.Fatalf("featured = %v", got)
		}
		if got := names(rest); !reflect.DeepEqual(got, []string{"Scotland", "Wales"}) {
			t.Fatalf("rest = %v", got)
		}
	})

	t.Run("south america", func(t *testing.T) {
		southAmerican := []Area{
			{ID: 2011, Name: "Argentina"},
			{ID: 2032, Name: "Brazil"},
			{ID: 2057, Name: "Colombia"},
		}
		featured, rest := SplitFeatured("South America", southAmerican)
		// Shortlist order wins over the incoming alphabetical order.
		if got := names(featured); !reflect.DeepEqual(got, []string{"Brazil", "Argentina"}) {
			t.Fatalf("featured = %v", got)
		}
		if got := names(rest); !reflect.DeepEqual(got, []string{"Colombia"}) {
			t.Fatalf("rest = %v", got)
		}
	})

	t.Run("continents without a shortlist stay flat", func(t *testing.T) {
		featured, rest := SplitFeatured("World", countries)
		if featured != nil {
			t.Fatalf("featured = %v, want none", featured)
		}
		if len(rest) != len(countries) {
			t.Fatalf("rest = %v", rest)
		}
	})
}

func names(areas []Area) []string {
	out := make([]string, 0, len(areas))
	for _, a := range areas {
		out = append(out, a.Name)
	}
	return out
}
