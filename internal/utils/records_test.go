package utils

import (
	"testing"

	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHead(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2}, Head(items, 2))
	assert.Equal(t, []int{1, 2, 3}, Head(items, 50))
	assert.Nil(t, Head(items, 0))
	assert.Nil(t, Head(items, -1))
	assert.Empty(t, Head([]int(nil), 5))
}

func TestRecordToAnalyzedReview(t *testing.T) {
	r := models.ReviewRecord{ProductName: "Cable", Text: "works", Label: "Positif"}
	got := RecordToAnalyzedReview(r, 0.4, "Positive")

	assert.Equal(t, r, got.ReviewRecord)
	assert.Equal(t, 0.4, got.SentimentScore)
	assert.Equal(t, "Positive", got.SentimentLabel)
}
