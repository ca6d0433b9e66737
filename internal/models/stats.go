package models

type ReviewStats struct {
	TotalItems      int     `json:"total_items"`
	DueItems        int     `json:"due_items"`
	TotalReviews    int     `json:"total_reviews"`
	AverageStrength float64 `json:"average_strength"`
	MasteryLevel    int     `json:"mastery_level"`
}
