package models

// ReviewRecord is one row of the review corpus. Label holds the upstream
// sentiment string as ingested and may be empty or spelled inconsistently.
type ReviewRecord struct {
	ProductName string `json:"product_name" msgpack:"product_name"`
	Text        string `json:"text" msgpack:"text"`
	Label       string `json:"label,omitempty" msgpack:"label,omitempty"`
}

type AnalyzedReview struct {
	ReviewRecord
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
}
