package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a 1-5 rating with an optional comment, bound to exactly one
// completed booking. The reviews index in pkg/database enforces the
// one-review-per-booking invariant at the storage layer.
type Review struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookingID  primitive.ObjectID `json:"booking_id" bson:"booking"`
	EmployerID primitive.ObjectID `json:"employer_id" bson:"employer"`
	LabourerID primitive.ObjectID `json:"labourer_id" bson:"labourer"`
	Rating     int                `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment    string             `json:"comment" bson:"comment" validate:"omitempty,max=500"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// ReviewDetail is a review with the reviewer's display name resolved.
type ReviewDetail struct {
	*Review
	Employer *PublicUser `json:"employer"`
}
