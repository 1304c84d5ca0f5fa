package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/profileranker/backend/models"
)

// Listing responses never carry the inline PDF payload
var withoutPDFData = bson.M{"pdfFile.data": 0}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// CreateJobDescription inserts a JD and fills in its id and createdAt
func (m *MongoClient) CreateJobDescription(ctx context.Context, jd *models.JobDescription) error {
	jd.ID = primitive.NewObjectID()
	if jd.CreatedAt.IsZero() {
		jd.CreatedAt = time.Now().UTC()
	}

	if _, err := m.collection(jobDescriptionsCollection).InsertOne(ctx, jd); err != nil {
		return fmt.Errorf("failed to create job description: %w", err)
	}
	return nil
}

// ListJobDescriptions returns every JD, newest first
func (m *MongoClient) ListJobDescriptions(ctx context.Context) ([]models.JobDescription, error) {
	opts := options.Find().SetSort(newestFirst).SetProjection(withoutPDFData)

	cur, err := m.collection(jobDescriptionsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	jds := []models.JobDescription{}
	if err := cur.All(ctx, &jds); err != nil {
		return nil, fmt.Errorf("failed to decode job descriptions: %w", err)
	}
	return jds, nil
}

// GetJobDescription returns a JD including its PDF payload
func (m *MongoClient) GetJobDescription(ctx context.Context, id string) (*models.JobDescription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var jd models.JobDescription
	if err := m.collection(jobDescriptionsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&jd); err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}
	return &jd, nil
}

// DeleteJobDescriptionByTitle removes one JD with the given title. When
// several JDs share a title only the first match is deleted.
func (m *MongoClient) DeleteJobDescriptionByTitle(ctx context.Context, title string) (*models.JobDescription, error) {
	opts := options.FindOneAndDelete().SetProjection(withoutPDFData)

	var jd models.JobDescription
	err := m.collection(jobDescriptionsCollection).FindOneAndDelete(ctx, bson.M{"title": title}, opts).Decode(&jd)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete job description: %w", err)
	}
	return &jd, nil
}

// CreateConsultantProfile inserts a profile and fills in its id and createdAt
func (m *MongoClient) CreateConsultantProfile(ctx context.Context, p *models.ConsultantProfile) error {
	p.ID = primitive.NewObjectID()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	if _, err := m.collection(consultantProfilesCollection).InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create consultant profile: %w", err)
	}
	return nil
}

// ListConsultantProfiles returns every profile, newest first
func (m *MongoClient) ListConsultantProfiles(ctx context.Context) ([]models.ConsultantProfile, error) {
	opts := options.Find().SetSort(newestFirst).SetProjection(withoutPDFData)

	cur, err := m.collection(consultantProfilesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultant profiles: %w", err)
	}

	profiles := []models.ConsultantProfile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode consultant profiles: %w", err)
	}
	return profiles, nil
}

// GetConsultantProfile returns a profile including its PDF payload
func (m *MongoClient) GetConsultantProfile(ctx context.Context, id string) (*models.ConsultantProfile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var p models.ConsultantProfile
	if err := m.collection(consultantProfilesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get consultant profile: %w", err)
	}
	return &p, nil
}

// DeleteConsultantProfileByName removes one profile with the given name.
// When several profiles share a name only the first match is deleted.
func (m *MongoClient) DeleteConsultantProfileByName(ctx context.Context, name string) (*models.ConsultantProfile, error) {
	opts := options.FindOneAndDelete().SetProjection(withoutPDFData)

	var p models.ConsultantProfile
	err := m.collection(consultantProfilesCollection).FindOneAndDelete(ctx, bson.M{"name": name}, opts).Decode(&p)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete consultant profile: %w", err)
	}
	return &p, nil
}

// FindProfilesForComparison loads the named profiles without PDF payloads.
// Invalid ids are skipped.
func (m *MongoClient) FindProfilesForComparison(ctx context.Context, ids []string) ([]models.ConsultantProfile, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []models.ConsultantProfile{}, nil
	}

	opts := options.Find().SetProjection(withoutPDFData)
	cur, err := m.collection(consultantProfilesCollection).Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find profiles: %w", err)
	}

	profiles := []models.ConsultantProfile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}
