package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacySession is a ComparisonResult document as written by the agent
// backend over time. Identifier and score fields are left untyped because
// older records store them as ObjectIds, hex strings, numbers or numeric
// strings; use reconcile.NormalizeSession before reading them.
type LegacySession struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobIDs      []interface{}      `bson:"jobIds"`
	ProfileIDs  []interface{}      `bson:"profileIds"`
	Results     []LegacyEntry      `bson:"results"`
	Comparisons []LegacyEntry      `bson:"comparisons"`
	TopProfiles []LegacyEntry      `bson:"topProfiles"`
	CreatedBy   interface{}        `bson:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// LegacyEntry is one element of results, comparisons or topProfiles
type LegacyEntry struct {
	ProfileID      interface{} `bson:"profileId"`
	ProfileIDSnake interface{} `bson:"profile_id"`

	SimilarityScore      interface{} `bson:"similarityScore"`
	SimilarityScoreSnake interface{} `bson:"similarity_score"`
	Score                interface{} `bson:"score"`

	Name               string `bson:"name"`
	ProfileName        string `bson:"profileName"`
	ProfileNameSnake   string `bson:"profile_name"`
	ApplicantName      string `bson:"applicantName"`
	ApplicantNameSnake string `bson:"applicant_name"`
}
