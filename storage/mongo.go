package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/profileranker/backend/config"
)

const (
	usersCollection              = "users"
	jobDescriptionsCollection    = "jobdescriptions"
	consultantProfilesCollection = "consultantprofiles"
	comparisonCollection         = "ComparisonResult"
)

var (
	// ErrNotFound is returned when a lookup matches no document
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a unique field already exists
	ErrDuplicate = errors.New("document already exists")
)

// MongoClient wraps MongoDB operations. It owns the driver's connection
// pool; construct it once and Close it on shutdown.
type MongoClient struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// NewMongoClient connects to MongoDB and verifies the connection
func NewMongoClient(ctx context.Context, cfg *config.Config) (*MongoClient, error) {
	timeout := time.Duration(cfg.MongoTimeoutSeconds) * time.Second

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoClient{
		client:  client,
		db:      client.Database(cfg.DBName),
		timeout: timeout,
	}, nil
}

// Close disconnects the client and drains the pool
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping checks that the primary is reachable
func (m *MongoClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes the service relies on. Comparison
// sessions belong to the agent backend and are left alone. Existing
// duplicate emails make the unique index fail; that is reported but the
// other indexes are still attempted.
func (m *MongoClient) EnsureIndexes(ctx context.Context) error {
	var errs []error

	_, err := m.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("users.email: %w", err))
	}

	for _, name := range []string{jobDescriptionsCollection, consultantProfilesCollection} {
		_, err := m.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.createdAt: %w", name, err))
		}
	}

	if len(errs) > 0 {
		log.Printf("[Mongo] %d index(es) could not be created", len(errs))
	}
	return errors.Join(errs...)
}

func (m *MongoClient) collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// objectIDs converts hex ids, silently dropping invalid ones
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil || seen[oid] {
			continue
		}
		seen[oid] = true
		out = append(out, oid)
	}
	return out
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
