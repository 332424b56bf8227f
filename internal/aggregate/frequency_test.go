package aggregate

import (
	"testing"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordFrequencies_Scenario(t *testing.T) {
	records := []models.ReviewRecord{
		{Text: "great product great value", Label: "Positive"},
		{Text: "great service", Label: "Positive"},
		{Text: "awful service", Label: "Negative"},
	}

	table, err := WordFrequencies(records, Precomputed(), sentiment.LabelPositive)
	require.NoError(t, err)

	assert.Equal(t, FrequencyTable{"great": 3, "product": 1, "value": 1, "service": 1}, table)
	assert.Equal(t, 6, table.Total())
}

func TestWordFrequencies_NoMatchIsEmptyNotError(t *testing.T) {
	records := []models.ReviewRecord{
		{Text: "great product", Label: "Positive"},
	}

	table, err := WordFrequencies(records, Precomputed(), sentiment.LabelNegative)
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.True(t, table.IsEmpty())
	assert.Empty(t, table.Top(10))
}

func TestWordFrequencies_BlankTexts(t *testing.T) {
	records := []models.ReviewRecord{
		{Text: "", Label: "Negatif"},
		{Text: "   \t", Label: "Negative"},
	}

	table, err := WordFrequencies(records, Precomputed(), sentiment.LabelNegative)
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
}

func TestWordFrequencies_NoTarget(t *testing.T) {
	records := []models.ReviewRecord{{Text: "great", Label: "Positive"}}

	_, err := WordFrequencies(records, Precomputed(), "")
	assert.ErrorIs(t, err, ErrNoTargetLabel)

	_, err = WordFrequencies(records, Precomputed(), sentiment.Label("Mixed"))
	assert.ErrorIs(t, err, ErrNoTargetLabel)
}

func TestWordFrequencies_TolerantAndCaseFolded(t *testing.T) {
	records := []models.ReviewRecord{
		{Text: "Great, GREAT!", Label: "Positif"},
		{Text: "great.", Label: "POSITIVE"},
	}

	table, err := WordFrequencies(records, Precomputed(), sentiment.LabelPositive)
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{"great": 3}, table)
}

func TestWordFrequencies_Stopwords(t *testing.T) {
	records := []models.ReviewRecord{
		{Text: "the battery is great and the screen is great", Label: "Positive"},
	}

	table, err := WordFrequencies(records, Precomputed(), sentiment.LabelPositive, WithStopwords(EnglishStopwords))
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{"battery": 1, "great": 2, "screen": 1}, table)
}

func TestWordFrequencies_JoinDoesNotMergeWords(t *testing.T) {
	records := []models.ReviewRecord{
		{Text: "good", Label: "Positive"},
		{Text: "value", Label: "Positive"},
	}

	table, err := WordFrequencies(records, Precomputed(), sentiment.LabelPositive)
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{"good": 1, "value": 1}, table)
}

func TestFrequencyTable_Top(t *testing.T) {
	table := FrequencyTable{"b": 2, "a": 2, "c": 5, "d": 1}

	assert.Equal(t, []WordCount{{"c", 5}, {"a", 2}, {"b", 2}}, table.Top(3))
	assert.Len(t, table.Top(0), 4)
	assert.Len(t, table.Top(100), 4)
}

func TestWordFrequencies_RecordFeedsOnlyItsResolvedLabel(t *testing.T) {
	records := []models.ReviewRecord{
		{Text: "alpha", Label: "non-negative/positive"},
	}

	s, err := Aggregate(records, Precomputed())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Counts[sentiment.LabelPositive])
	assert.Zero(t, s.Counts[sentiment.LabelNegative])

	positive, err := WordFrequencies(records, Precomputed(), sentiment.LabelPositive)
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{"alpha": 1}, positive)

	negative, err := WordFrequencies(records, Precomputed(), sentiment.LabelNegative)
	require.NoError(t, err)
	assert.True(t, negative.IsEmpty())
}
