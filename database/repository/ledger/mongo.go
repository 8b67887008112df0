// File: database/repository/ledger/mongo.go
package ledgerRepo

import (
	"context"
	"time"

	"classboard/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// semesterDoc is the stored shape: the semester plus its ledger position.
type semesterDoc struct {
	Position        int `bson:"position"`
	models.Semester `bson:",inline"`
}

// MongoLedgerRepo stores one document per semester.
type MongoLedgerRepo struct {
	coll *mongo.Collection
}

// NewMongoLedgerRepo constructs a repository on the "semesters" collection.
func NewMongoLedgerRepo(client *mongo.Client, dbName string) *MongoLedgerRepo {
	return &MongoLedgerRepo{
		coll: client.Database(dbName).Collection("semesters"),
	}
}

// EnsureIndexes creates the unique id index and the ordering index.
func (r *MongoLedgerRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetName("position_idx"),
		},
	})
	return err
}

func (r *MongoLedgerRepo) List(ctx context.Context) ([]models.Semester, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []semesterDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Semester, len(docs))
	for i, d := range docs {
		out[i] = d.Semester
		if out[i].Courses == nil {
			out[i].Courses = []models.Course{}
		}
	}
	return out, nil
}

func (r *MongoLedgerRepo) Save(ctx context.Context, position int, semester models.Semester) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := semesterDoc{Position: position, Semester: semester}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": semester.ID}, doc, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoLedgerRepo) Delete(ctx context.Context, semesterID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"id": semesterID})
	return err
}

func (r *MongoLedgerRepo) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}
