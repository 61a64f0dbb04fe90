package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SUDD-dawg/Low-Risk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoFeedbackRepo struct {
	DB *mongo.Client
}

func NewMongoFeedbackRepo(db *mongo.Client) *MongoFeedbackRepo {
	return &MongoFeedbackRepo{DB: db}
}

func (r *MongoFeedbackRepo) feedback() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("feedback")
}

func (r *MongoFeedbackRepo) Create(ctx context.Context, fb *models.Feedback) error {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	id, err := nextSequence(ctx, r.DB, "feedback")
	if err != nil {
		return err
	}
	fb.ID = id

	_, err = r.feedback().InsertOne(ctx, fb)
	return err
}

func (r *MongoFeedbackRepo) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	fb := &models.Feedback{}
	err := r.feedback().FindOne(ctx, bson.M{"id": id}).Decode(fb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fb, nil
}

func (r *MongoFeedbackRepo) UpdateCategory(ctx context.Context, id int64, category string, confidence float64) error {
	res, err := r.feedback().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"category":   category,
			"confidence": confidence,
			"processed":  true,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoFeedbackRepo) GetAll(ctx context.Context) ([]*models.Feedback, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoFeedbackRepo) GetUnprocessed(ctx context.Context) ([]*models.Feedback, error) {
	return r.list(ctx, bson.M{"processed": false})
}

func (r *MongoFeedbackRepo) list(ctx context.Context, filter bson.M) ([]*models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "id", Value: -1}})
	cur, err := r.feedback().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Feedback
	if err := cur.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
