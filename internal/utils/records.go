package utils

import (
	"github.com/spacesedan/reviewlens/internal/models"
)

func RecordToAnalyzedReview(r models.ReviewRecord, score float64, label string) models.AnalyzedReview {
	return models.AnalyzedReview{
		ReviewRecord:   r,
		SentimentScore: score,
		SentimentLabel: label,
	}
}

// Head returns at most the first n items. The result shares the backing array.
func Head[T any](items []T, n int) []T {
	if n <= 0 {
		return nil
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
