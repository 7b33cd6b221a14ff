package mongodb

import (
	"context"
	"fmt"
	"time"

	"labourlink/internal/models"
	"labourlink/internal/repositories/interfaces"
	"labourlink/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) interfaces.ReviewRepository {
	return &reviewRepository{
		collection: db.Collection("reviews"),
	}
}

// Create inserts the review. The unique index on the booking reference makes
// a concurrent second review for the same booking fail here with
// utils.ErrConflict instead of double-counting.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	review.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("review for booking %s: %w", review.BookingID.Hex(), utils.ErrConflict)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.collection.FindOne(ctx, bson.M{"booking": bookingID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("review for booking %s: %w", bookingID.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review by booking: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) GetByLabourer(ctx context.Context, labourerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Review, int64, error) {
	query := bson.M{"labourer": labourerID}

	cursor, err := r.collection.Find(ctx, query, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*models.Review
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, 0, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	return reviews, total, nil
}

// GetAllByLabourer fetches the full review set for a labourer. The rating
// aggregator recomputes from this set every time rather than keeping a
// running average.
func (r *reviewRepository) GetAllByLabourer(ctx context.Context, labourerID primitive.ObjectID) ([]*models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"labourer": labourerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews by labourer: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*models.Review
	for cursor.Next(ctx) {
		var review models.Review
		if err := cursor.Decode(&review); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

// Statistics
func (r *reviewRepository) GetTotalCount(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}
