package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel_planner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	UID         string             `bson:"uid"`
	Email       string             `bson:"email"`
	DisplayName string             `bson:"displayName,omitempty"`
	Password    string             `bson:"password"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		UID:          d.UID,
		Email:        d.Email,
		DisplayName:  d.DisplayName,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
}

type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection(usersCollection)}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserMongo)(nil)

// Create inserts the user; unique index violations on email/uid become ErrDuplicate.
func (r *UserMongo) Create(ctx context.Context, u models.User) (models.User, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := userDocument{
		ID:          primitive.NewObjectID(),
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Password:    u.PasswordHash,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, fmt.Errorf("insert user %q: %w", u.Email, ErrDuplicate)
		}
		return models.User{}, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return doc.toModel(), nil
}

func (r *UserMongo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"uid": uid})
}

// findOne returns (nil, nil) if nothing matches.
func (r *UserMongo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u := doc.toModel()
	return &u, nil
}

// Update applies the patch. The stored hash is only replaced when the patch carries one.
func (r *UserMongo) Update(ctx context.Context, uid string, p models.UserPatch) (models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.DisplayName != nil {
		set["displayName"] = *p.DisplayName
	}
	if p.PasswordHash != nil {
		set["password"] = *p.PasswordHash
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"uid": uid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return models.User{}, notFoundOr(err, "update user")
	}
	return doc.toModel(), nil
}
