// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"movie-catalog/internal/database"
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
)

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks movie-catalog/internal/repository UserRepository

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, changes *models.UserChanges) (*models.User, error)
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(database.UsersCollection),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindAll returns all users
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// Update applies the non-nil changes and returns the updated user.
// The password in changes must already be hashed.
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, changes *models.UserChanges) (*models.User, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if changes.Email != nil {
		existing, _ := r.FindByEmail(ctx, *changes.Email)
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrUserAlreadyExists
		}
		updateDoc["email"] = *changes.Email
	}
	if changes.Name != nil {
		updateDoc["name"] = *changes.Name
	}
	if changes.Surname != nil {
		updateDoc["surname"] = *changes.Surname
	}
	if changes.PasswordHash != nil {
		updateDoc["password"] = *changes.PasswordHash
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}
