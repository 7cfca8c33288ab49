package engine

import (
	"sort"
	"strings"

	"github.com/Bishesh15/smartpantry/models"
)

// Search does a case-insensitive substring match over recipe name,
// description and category. An empty term yields nothing — search is
// never "match everything". Results are ordered by average rating
// descending, then name ascending.
func Search(term string, recipes []models.Recipe) []models.Recipe {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var out []models.Recipe
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Description), term) ||
			strings.Contains(strings.ToLower(r.Category), term) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating > out[j].AverageRating
		}
		return out[i].Name < out[j].Name
	})

	return out
}
