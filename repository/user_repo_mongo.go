package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SUDD-dawg/Low-Risk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const mongoDatabase = "lowrisk"

// Unique index names, matched against duplicate-key errors to pick the
// conflict sentinel, like the constraint names on the Postgres side.
const (
	uniqueUsernameIndex = "uniq_username"
	uniqueEmailIndex    = "uniq_email"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) users() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("users")
}

// EnsureIndexes creates the unique indexes on username and email. The
// engine enforces uniqueness at write time; concurrent registrations race
// on the index, not on a read-check.
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.users().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(uniqueUsernameIndex),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(uniqueEmailIndex),
		},
	})
	return err
}

func (r *MongoUserRepo) Create(ctx context.Context, user *models.User, password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	id, err := nextSequence(ctx, r.DB, "users")
	if err != nil {
		return err
	}
	user.ID = id

	_, err = r.users().InsertOne(ctx, user)
	if err != nil {
		if dup := mapDuplicateKeyError(err); dup != nil {
			return dup
		}
		return err
	}
	return nil
}

// mapDuplicateKeyError turns a unique-index violation into the matching
// conflict sentinel, or returns nil for any other error.
func mapDuplicateKeyError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	if strings.Contains(err.Error(), uniqueEmailIndex) {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}

func (r *MongoUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, bson.M{"username": username})
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, bson.M{"email": email})
}

func (r *MongoUserRepo) getBy(ctx context.Context, filter bson.M) (*models.User, error) {
	user := &models.User{}
	err := r.users().FindOne(ctx, filter).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// nextSequence hands out auto-incrementing integer ids from a counters
// collection, preserving the identity contract of the relational schema.
func nextSequence(ctx context.Context, client *mongo.Client, name string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := client.Database(mongoDatabase).Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
