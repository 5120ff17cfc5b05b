package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prediction is the verdict stored on a classification record.
type Prediction string

const (
	PredictionReal    Prediction = "real"
	PredictionFake    Prediction = "fake"
	PredictionUnknown Prediction = "unknown"
)

// NormalizePrediction maps a raw scorer label onto the closed set of predictions.
// Matching is case-insensitive; anything other than real or fake becomes unknown.
func NormalizePrediction(raw string) Prediction {
	switch Prediction(strings.ToLower(strings.TrimSpace(raw))) {
	case PredictionReal:
		return PredictionReal
	case PredictionFake:
		return PredictionFake
	default:
		return PredictionUnknown
	}
}

// IsValid reports whether p is one of the enumerated predictions.
func (p Prediction) IsValid() bool {
	return p == PredictionReal || p == PredictionFake || p == PredictionUnknown
}

// NormalizeConfidence keeps a confidence only when it is a finite number in [0, 1].
func NormalizeConfidence(confidence *float64) *float64 {
	if confidence == nil {
		return nil
	}

	value := *confidence
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > 1 {
		return nil
	}

	return &value
}

// Classification is one persisted verdict owned by a single user.
// Records are immutable once created; the only mutation is deletion by the owner.
type Classification struct {
	ID         uuid.UUID  `json:"_id"`
	UserID     uuid.UUID  `json:"userId"`
	Title      string     `json:"title"`
	Date       time.Time  `json:"date"`
	Subject    string     `json:"subject"`
	Text       string     `json:"text"`
	Prediction Prediction `json:"prediction"`
	Confidence *float64   `json:"confidence"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
