package mongodb

import (
	"time"

	"newsguard/internal/domain/entity"

	"github.com/google/uuid"
)

// userDocument is the stored shape of a user; ids are uuid strings.
type userDocument struct {
	ID           string    `bson:"_id"`
	FirstName    string    `bson:"firstName"`
	LastName     string    `bson:"lastName"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

type classificationDocument struct {
	ID         string    `bson:"_id"`
	UserID     string    `bson:"userId"`
	Title      string    `bson:"title"`
	Date       time.Time `bson:"date"`
	Subject    string    `bson:"subject"`
	Text       string    `bson:"text"`
	Prediction string    `bson:"prediction"`
	Confidence *float64  `bson:"confidence,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

func toUserDomain(doc *userDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           id,
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		ID:           user.ID.String(),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toClassificationDomain(doc *classificationDocument) (*entity.Classification, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(doc.UserID)
	if err != nil {
		return nil, err
	}

	return &entity.Classification{
		ID:         id,
		UserID:     userID,
		Title:      doc.Title,
		Date:       doc.Date.UTC(),
		Subject:    doc.Subject,
		Text:       doc.Text,
		Prediction: entity.NormalizePrediction(doc.Prediction),
		Confidence: entity.NormalizeConfidence(doc.Confidence),
		CreatedAt:  doc.CreatedAt.UTC(),
		UpdatedAt:  doc.UpdatedAt.UTC(),
	}, nil
}

func fromClassificationDomain(record *entity.Classification) *classificationDocument {
	return &classificationDocument{
		ID:         record.ID.String(),
		UserID:     record.UserID.String(),
		Title:      record.Title,
		Date:       record.Date,
		Subject:    record.Subject,
		Text:       record.Text,
		Prediction: string(record.Prediction),
		Confidence: record.Confidence,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}
