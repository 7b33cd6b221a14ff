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

type userRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewUserRepository(db *mongo.Database, cache CacheService) interfaces.UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
		cache:      cache,
	}
}

// Basic CRUD operations
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already registered: %w", utils.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.cacheUser(ctx, user)

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if user := r.getUserFromCache(ctx, id.Hex()); user != nil {
		return user, nil
	}

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	r.cacheUser(ctx, &user)

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	email := r.lookupEmail(ctx, id)

	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id.Hex(), utils.ErrNotFound)
	}

	r.invalidateUserCache(ctx, id.Hex(), email)

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	// The email must be read before the document is gone so the email-keyed
	// cache entry can be dropped with it.
	email := r.lookupEmail(ctx, id)

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("user %s: %w", id.Hex(), utils.ErrNotFound)
	}

	r.invalidateUserCache(ctx, id.Hex(), email)

	return nil
}

// Authentication operations
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	cacheKey := utils.CacheKeyUserEmailPrefix + email
	if r.cache != nil {
		var user models.User
		if err := r.cache.Get(ctx, cacheKey, &user); err == nil {
			return &user, nil
		}
	}

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user with email %s: %w", email, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, user, utils.CacheTTLUser)
	}
	r.cacheUser(ctx, &user)

	return &user, nil
}

// Labourer lookups
func (r *userRepository) GetLabourerByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{
		"_id":  id,
		"role": models.UserRoleLabourer,
	}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("labourer %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get labourer: %w", err)
	}

	return &user, nil
}

func (r *userRepository) SearchLabourers(ctx context.Context, filter *interfaces.LabourerFilter) ([]*models.User, int64, error) {
	query := bson.M{
		"role":         models.UserRoleLabourer,
		"is_available": true,
	}
	if filter != nil && filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter != nil && filter.City != "" {
		query["location.city"] = bson.M{"$regex": filter.City, "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "rating", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search labourers: %w", err)
	}
	defer cursor.Close(ctx)

	var labourers []*models.User
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, 0, fmt.Errorf("failed to decode labourer: %w", err)
		}
		labourers = append(labourers, &user)
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count labourers: %w", err)
	}

	return labourers, total, nil
}

// Rating aggregate write-back
func (r *userRepository) UpdateRating(ctx context.Context, id primitive.ObjectID, rating float64, totalReviews int) error {
	err := r.Update(ctx, id, map[string]interface{}{
		"rating":        rating,
		"total_reviews": totalReviews,
	})
	if err != nil {
		return err
	}

	if r.cache != nil {
		r.cache.Delete(ctx, utils.CacheKeyLabourerRating+id.Hex())
	}

	return nil
}

// Listing
func (r *userRepository) List(ctx context.Context, role models.UserRole, params *utils.PaginationParams) ([]*models.User, int64, error) {
	query := bson.M{}
	if role != "" {
		query["role"] = role
	}

	cursor, err := r.collection.Find(ctx, query, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*models.User
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, 0, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, &user)
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}

// Statistics
func (r *userRepository) GetTotalCount(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *userRepository) GetCountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}

func (r *userRepository) GetLabourerCountByCategory(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": models.UserRoleLabourer}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate labourer categories: %w", err)
	}
	defer cursor.Close(ctx)

	stats := make(map[string]int64)
	for cursor.Next(ctx) {
		var result struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&result); err != nil {
			return nil, fmt.Errorf("failed to decode category stats: %w", err)
		}
		stats[result.ID] = result.Count
	}

	return stats, nil
}

// Cache helpers
func (r *userRepository) cacheUser(ctx context.Context, user *models.User) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, utils.CacheKeyUserPrefix+user.ID.Hex(), user, utils.CacheTTLUser)
}

func (r *userRepository) getUserFromCache(ctx context.Context, id string) *models.User {
	if r.cache == nil {
		return nil
	}
	var user models.User
	if err := r.cache.Get(ctx, utils.CacheKeyUserPrefix+id, &user); err != nil {
		return nil
	}
	return &user
}

// invalidateUserCache drops both keys a user can be cached under. The email
// key would otherwise keep serving logins until its TTL expires.
func (r *userRepository) invalidateUserCache(ctx context.Context, id, email string) {
	if r.cache == nil {
		return
	}
	keys := []string{utils.CacheKeyUserPrefix + id}
	if email != "" {
		keys = append(keys, utils.CacheKeyUserEmailPrefix+email)
	}
	r.cache.Delete(ctx, keys...)
}

func (r *userRepository) lookupEmail(ctx context.Context, id primitive.ObjectID) string {
	if r.cache == nil {
		return ""
	}
	var doc struct {
		Email string `bson:"email"`
	}
	opts := options.FindOne().SetProjection(bson.M{"email": 1})
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc); err != nil {
		return ""
	}
	return doc.Email
}
