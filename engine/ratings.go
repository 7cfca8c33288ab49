package engine

import "github.com/Bishesh15/smartpantry/models"

// UpsertRating replaces an existing (user, recipe) rating in place or
// appends a new one. Value must already be validated against the
// rating scale by the caller; the engine assumes pre-validated input.
// The input slice is not modified.
func UpsertRating(ratings []models.Rating, userID, recipeID uint, value int, comment string) []models.Rating {
	out := make([]models.Rating, len(ratings))
	copy(out, ratings)
	for i := range out {
		if out[i].UserID == userID && out[i].RecipeID == recipeID {
			out[i].Value = value
			out[i].Comment = comment
			return out
		}
	}
	return append(out, models.Rating{
		UserID:   userID,
		RecipeID: recipeID,
		Value:    value,
		Comment:  comment,
	})
}

// RecomputeAggregate derives (average, count) from the full rating set
// of one recipe. Average is 0 exactly when there are no ratings.
// Like the calorie total this is always recomputed from scratch, so
// concurrent upserts converge to a value consistent with some
// serialization of the writes.
func RecomputeAggregate(ratings []models.Rating) (average float64, count int) {
	count = len(ratings)
	if count == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	return float64(sum) / float64(count), count
}
