package engine

import (
	"testing"

	"github.com/Bishesh15/smartpantry/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeAggregate(t *testing.T) {
	avg, count := RecomputeAggregate(nil)
	assert.Zero(t, avg, "average is zero exactly when there are no ratings")
	assert.Zero(t, count)

	ratings := []models.Rating{
		{UserID: 1, RecipeID: 9, Value: 4},
		{UserID: 2, RecipeID: 9, Value: 2},
	}
	avg, count = RecomputeAggregate(ratings)
	assert.Equal(t, 3.0, avg)
	assert.Equal(t, 2, count)
}

func TestAggregateStaysInScale(t *testing.T) {
	for _, values := range [][]int{{1}, {5}, {1, 5}, {2, 3, 4}, {5, 5, 5, 5}} {
		var ratings []models.Rating
		for i, v := range values {
			ratings = append(ratings, models.Rating{UserID: uint(i + 1), RecipeID: 1, Value: v})
		}
		avg, count := RecomputeAggregate(ratings)
		assert.Equal(t, len(values), count)
		assert.GreaterOrEqual(t, avg, float64(models.MinRating))
		assert.LessOrEqual(t, avg, float64(models.MaxRating))
	}
}

func TestUpsertRatingReplaces(t *testing.T) {
	ratings := []models.Rating{
		{UserID: 1, RecipeID: 7, Value: 4},
		{UserID: 2, RecipeID: 7, Value: 2},
	}

	// resubmission replaces, the set never grows
	updated := UpsertRating(ratings, 1, 7, 5, "even better")
	require.Len(t, updated, 2)

	avg, count := RecomputeAggregate(updated)
	assert.Equal(t, 3.5, avg)
	assert.Equal(t, 2, count)

	for _, r := range updated {
		if r.UserID == 1 {
			assert.Equal(t, 5, r.Value)
			assert.Equal(t, "even better", r.Comment)
		}
	}
}

func TestUpsertRatingAppendsNewUser(t *testing.T) {
	ratings := []models.Rating{{UserID: 1, RecipeID: 7, Value: 4}}

	updated := UpsertRating(ratings, 2, 7, 2, "")
	require.Len(t, updated, 2)

	avg, count := RecomputeAggregate(updated)
	assert.Equal(t, 3.0, avg)
	assert.Equal(t, 2, count)
}

func TestUpsertRatingLeavesInputAlone(t *testing.T) {
	ratings := []models.Rating{{UserID: 1, RecipeID: 7, Value: 4}}

	_ = UpsertRating(ratings, 1, 7, 1, "changed")
	assert.Equal(t, 4, ratings[0].Value, "input snapshot must not be mutated")
	assert.Empty(t, ratings[0].Comment)
}

func TestUpsertRatingDistinguishesRecipes(t *testing.T) {
	// same user, different recipe: append, not replace
	ratings := []models.Rating{{UserID: 1, RecipeID: 7, Value: 4}}

	updated := UpsertRating(ratings, 1, 8, 2, "")
	require.Len(t, updated, 2)
}
