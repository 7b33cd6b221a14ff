package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateReviewCreate(t *testing.T) {
	valid := &ReviewCreateRequest{
		Booking: primitive.NewObjectID().Hex(),
		Rating:  4,
		Comment: "Good work, on time",
	}
	assert.Empty(t, ValidateReviewCreate(valid))
}

func TestValidateReviewCreateRatingBounds(t *testing.T) {
	for _, rating := range []int{-1, 0, 6, 100} {
		req := &ReviewCreateRequest{
			Booking: primitive.NewObjectID().Hex(),
			Rating:  rating,
		}
		assert.NotEmpty(t, ValidateReviewCreate(req), "rating %d must be rejected", rating)
	}
	for rating := 1; rating <= 5; rating++ {
		req := &ReviewCreateRequest{
			Booking: primitive.NewObjectID().Hex(),
			Rating:  rating,
		}
		assert.Empty(t, ValidateReviewCreate(req), "rating %d must be accepted", rating)
	}
}

func TestValidateReviewCreateCommentLength(t *testing.T) {
	req := &ReviewCreateRequest{
		Booking: primitive.NewObjectID().Hex(),
		Rating:  3,
		Comment: strings.Repeat("a", 500),
	}
	assert.Empty(t, ValidateReviewCreate(req))

	req.Comment = strings.Repeat("a", 501)
	assert.NotEmpty(t, ValidateReviewCreate(req))
}

func TestValidateReviewCreateMissingBooking(t *testing.T) {
	assert.NotEmpty(t, ValidateReviewCreate(&ReviewCreateRequest{Rating: 3}))
	assert.NotEmpty(t, ValidateReviewCreate(&ReviewCreateRequest{Booking: "zzz", Rating: 3}))
}
