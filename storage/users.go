package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/profileranker/backend/models"
)

// CreateUser creates a new user. It returns ErrDuplicate when the email is
// already registered.
func (m *MongoClient) CreateUser(ctx context.Context, user *models.User) error {
	exists, err := m.EmailExists(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return ErrDuplicate
	}

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := m.collection(usersCollection).InsertOne(ctx, user); err != nil {
		// The unique index catches a concurrent signup with the same email
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email
func (m *MongoClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by hex id
func (m *MongoClient) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = m.collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// EmailExists reports whether an account uses email
func (m *MongoClient) EmailExists(ctx context.Context, email string) (bool, error) {
	n, err := m.collection(usersCollection).CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return n > 0, nil
}
