package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockClient(mt *mtest.T) *MongoClient {
	return &MongoClient{client: mt.Client, db: mt.DB, timeout: 5 * time.Second}
}

func startedCommand(mt *mtest.T, name string) bson.Raw {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, name, evt.CommandName)
	return evt.Command
}

func TestLatestSessionForJob(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "test." + comparisonCollection

	mt.Run("matches ObjectId or hex string", func(mt *mtest.T) {
		jobID := primitive.NewObjectID()
		profile := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "jobIds", Value: bson.A{jobID.Hex()}},
			{Key: "results", Value: bson.A{bson.D{
				{Key: "profileId", Value: profile},
				{Key: "similarityScore", Value: 0.8},
			}}},
		}))

		session, err := newMockClient(mt).LatestSessionForJob(context.Background(), jobID.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, session)
		require.Len(mt, session.Results, 1)
		assert.Equal(mt, profile, session.Results[0].ProfileID)

		cmd := startedCommand(mt, "find")
		in, err := cmd.Lookup("filter", "jobIds", "$in").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, in, 2)
		assert.Equal(mt, jobID, in[0].ObjectID())
		assert.Equal(mt, jobID.Hex(), in[1].StringValue())
		assert.Equal(mt, int64(-1), cmd.Lookup("sort", "createdAt").AsInt64())
	})

	mt.Run("invalid id queries the raw string only", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := newMockClient(mt).LatestSessionForJob(context.Background(), "legacy-42")
		require.NoError(mt, err)

		in, err := startedCommand(mt, "find").Lookup("filter", "jobIds", "$in").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, in, 1)
		assert.Equal(mt, "legacy-42", in[0].StringValue())
	})

	mt.Run("never compared", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		session, err := newMockClient(mt).LatestSessionForJob(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
		assert.Nil(mt, session)
	})

	mt.Run("query failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := newMockClient(mt).LatestSessionForJob(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorContains(mt, err, "failed to get comparison session")
	})
}

func TestRecentJobSummaries(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "test." + jobDescriptionsCollection

	mt.Run("filters by uploader", func(mt *mtest.T) {
		uploader := primitive.NewObjectID()
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Backend"}, {Key: "createdAt", Value: created}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Legacy"}},
		))

		jobs, err := newMockClient(mt).RecentJobSummaries(context.Background(), uploader.Hex(), 10)
		require.NoError(mt, err)
		require.Len(mt, jobs, 2)
		assert.Equal(mt, "Backend", jobs[0].Title)
		require.NotNil(mt, jobs[0].CreatedAt)
		assert.True(mt, created.Equal(*jobs[0].CreatedAt))
		assert.Nil(mt, jobs[1].CreatedAt)

		cmd := startedCommand(mt, "find")
		assert.Equal(mt, jobDescriptionsCollection, cmd.Lookup("find").StringValue())

		or, err := cmd.Lookup("filter", "$or").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, or, 2)
		assert.Equal(mt, uploader, or[0].Document().Lookup("uploadedBy").ObjectID())
		assert.Equal(mt, uploader, or[1].Document().Lookup("createdBy").ObjectID())

		assert.Equal(mt, int64(1), cmd.Lookup("projection", "title").AsInt64())
		assert.Equal(mt, int64(1), cmd.Lookup("projection", "createdAt").AsInt64())
		assert.Equal(mt, int64(-1), cmd.Lookup("sort", "createdAt").AsInt64())
		assert.Equal(mt, int64(10), cmd.Lookup("limit").AsInt64())
	})

	mt.Run("invalid uploader lists everything", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		jobs, err := newMockClient(mt).RecentJobSummaries(context.Background(), "someone", 10)
		require.NoError(mt, err)
		assert.NotNil(mt, jobs)
		assert.Empty(mt, jobs)

		elems, err := startedCommand(mt, "find").Lookup("filter").Document().Elements()
		require.NoError(mt, err)
		assert.Empty(mt, elems)
	})
}

func TestDeleteByName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("job description by title", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Backend"},
			{Key: "content", Value: "We need Go"},
		}}))

		jd, err := newMockClient(mt).DeleteJobDescriptionByTitle(context.Background(), "Backend")
		require.NoError(mt, err)
		assert.Equal(mt, id, jd.ID)

		cmd := startedCommand(mt, "findAndModify")
		assert.Equal(mt, jobDescriptionsCollection, cmd.Lookup("findAndModify").StringValue())
		assert.Equal(mt, "Backend", cmd.Lookup("query", "title").StringValue())
		assert.True(mt, cmd.Lookup("remove").Boolean())
		assert.Equal(mt, int64(0), cmd.Lookup("fields", "pdfFile.data").AsInt64())
	})

	mt.Run("consultant profile by name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Jane Doe"},
		}}))

		p, err := newMockClient(mt).DeleteConsultantProfileByName(context.Background(), "Jane Doe")
		require.NoError(mt, err)
		assert.Equal(mt, "Jane Doe", p.Name)

		cmd := startedCommand(mt, "findAndModify")
		assert.Equal(mt, consultantProfilesCollection, cmd.Lookup("findAndModify").StringValue())
		assert.Equal(mt, "Jane Doe", cmd.Lookup("query", "name").StringValue())
		assert.True(mt, cmd.Lookup("remove").Boolean())
	})

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := newMockClient(mt).DeleteJobDescriptionByTitle(context.Background(), "Missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestEnsureIndexes_SkipsComparisonSessions(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("document collections only", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, newMockClient(mt).EnsureIndexes(context.Background()))

		var indexed []string
		for _, evt := range mt.GetAllStartedEvents() {
			require.Equal(mt, "createIndexes", evt.CommandName)
			indexed = append(indexed, evt.Command.Lookup("createIndexes").StringValue())
		}
		assert.Equal(mt, []string{usersCollection, jobDescriptionsCollection, consultantProfilesCollection}, indexed)
		assert.NotContains(mt, indexed, comparisonCollection)
	})
}
