package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/evaluation"
	"github.com/prepdeck/prepdeck/internal/item"
)

// Exercises the full loop one CLI session drives: seed the catalog, sit a
// test, replay progress, adapt difficulty, and ask for recommendations.
func TestAttemptToRecommendationFlow(t *testing.T) {
	ctx := context.Background()
	items := []item.LearningItem{
		testItem("alg-1", "algebra", item.DifficultyMedium),
		testItem("alg-2", "algebra", item.DifficultyMedium),
		testItem("alg-3", "algebra", item.DifficultyMedium),
		testItem("geo-1", "geometry", item.DifficultyMedium),
	}
	e, _, events := newTestEngine(t, items...)

	attempt := evaluation.Attempt{
		ID: "sitting-1",
		Answers: []evaluation.AnswerRecord{
			{ItemID: "alg-1", Response: item.Response{Choice: "B"}, TimeSpentSecs: 50},
			{ItemID: "alg-2", Response: item.Response{Choice: "B"}, TimeSpentSecs: 45},
			{ItemID: "alg-3", Response: item.Response{Choice: "A"}, TimeSpentSecs: 70},
			{ItemID: "geo-1", Response: item.Response{Choice: "A"}, TimeSpentSecs: 40},
		},
		TotalTimeSecs: 205,
	}

	result, err := e.SubmitAttempt(ctx, attempt)
	require.NoError(t, err)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 2, result.IncorrectAnswers)
	assert.InDelta(t, 50.0, result.Score, 0.01)
	require.Len(t, events.answers, 4)

	from := testNow.Add(-time.Hour)
	to := testNow.Add(time.Hour)

	profile, err := e.Progress(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, 4, profile.TotalQuestions)
	assert.InDelta(t, 0.5, profile.Accuracy, 0.001)
	require.Contains(t, profile.TopicMastery, "algebra")
	assert.Equal(t, 3, profile.TopicMastery["algebra"].Attempts)

	// 0% on geometry inside the window demotes from the base rank.
	next, err := e.NextDifficulty(ctx, "geometry", item.DifficultyMedium)
	require.NoError(t, err)
	assert.Equal(t, item.DifficultyEasy, next)

	recs, path, err := e.Recommend(ctx, from, to, &result)
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "increase-practice-volume", recs[0].Action)
	require.NotEmpty(t, path.Phases)
	assert.Equal(t, 21, path.EstimatedDays)
}
