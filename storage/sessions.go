package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/profileranker/backend/models"
)

var summaryProjection = bson.M{"title": 1, "createdAt": 1}

// RecentJobSummaries returns up to limit JDs, newest first, projected to
// {title, createdAt}. A valid createdBy restricts the result to that
// uploader; older documents recorded the uploader as createdBy.
func (m *MongoClient) RecentJobSummaries(ctx context.Context, createdBy string, limit int) ([]models.JobSummary, error) {
	filter := bson.M{}
	if oid, err := primitive.ObjectIDFromHex(createdBy); err == nil {
		filter = bson.M{"$or": bson.A{
			bson.M{"uploadedBy": oid},
			bson.M{"createdBy": oid},
		}}
	}

	opts := options.Find().
		SetSort(newestFirst).
		SetProjection(summaryProjection).
		SetLimit(int64(limit))

	cur, err := m.collection(jobDescriptionsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	summaries := []models.JobSummary{}
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode job descriptions: %w", err)
	}
	return summaries, nil
}

// GetJobSummary returns the {title, createdAt} projection of one JD
func (m *MongoClient) GetJobSummary(ctx context.Context, id string) (*models.JobSummary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	opts := options.FindOne().SetProjection(summaryProjection)

	var summary models.JobSummary
	if err := m.collection(jobDescriptionsCollection).FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&summary); err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}
	return &summary, nil
}

// LatestSessionForJob returns the most recent comparison session whose
// jobIds contains jobID, stored either as an ObjectId or as its hex
// string. It returns nil, nil when the JD has never been compared.
func (m *MongoClient) LatestSessionForJob(ctx context.Context, jobID string) (*models.LegacySession, error) {
	candidates := bson.A{jobID}
	if oid, err := primitive.ObjectIDFromHex(jobID); err == nil {
		candidates = append(bson.A{oid}, candidates...)
	}

	opts := options.FindOne().SetSort(newestFirst)

	var session models.LegacySession
	err := m.collection(comparisonCollection).
		FindOne(ctx, bson.M{"jobIds": bson.M{"$in": candidates}}, opts).
		Decode(&session)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comparison session: %w", err)
	}
	return &session, nil
}

// ProfileNamesByIDs maps hex id to profile name for the ids that exist
func (m *MongoClient) ProfileNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string)

	oids := objectIDs(ids)
	if len(oids) == 0 {
		return names, nil
	}

	refs, err := m.findProfileRefs(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find())
	if err != nil {
		return nil, err
	}
	for _, ref := range refs {
		names[ref.ID.Hex()] = ref.Name
	}
	return names, nil
}

// ProfileIDsByNames maps profile name to hex id. When several profiles
// share a name the newest wins.
func (m *MongoClient) ProfileIDsByNames(ctx context.Context, names []string) (map[string]string, error) {
	ids := make(map[string]string)
	if len(names) == 0 {
		return ids, nil
	}

	refs, err := m.findProfileRefs(ctx, bson.M{"name": bson.M{"$in": names}}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	for _, ref := range refs {
		if _, ok := ids[ref.Name]; !ok {
			ids[ref.Name] = ref.ID.Hex()
		}
	}
	return ids, nil
}

// AnyProfiles returns the first limit profiles in insertion order
func (m *MongoClient) AnyProfiles(ctx context.Context, limit int) ([]models.ProfileRef, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))
	return m.findProfileRefs(ctx, bson.M{}, opts)
}

func (m *MongoClient) findProfileRefs(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.ProfileRef, error) {
	opts.SetProjection(bson.M{"name": 1})

	cur, err := m.collection(consultantProfilesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find consultant profiles: %w", err)
	}

	refs := []models.ProfileRef{}
	if err := cur.All(ctx, &refs); err != nil {
		return nil, fmt.Errorf("failed to decode consultant profiles: %w", err)
	}
	return refs, nil
}
