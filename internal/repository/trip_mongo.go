package repository

import (
	"context"
	"fmt"
	"time"

	"travel_planner/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const tripOwnerField = "userUid"

type tripDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	TripName    string             `bson:"tripName"`
	Destination string             `bson:"destination"`
	StartDate   time.Time          `bson:"startDate"`
	EndDate     time.Time          `bson:"endDate"`
	UserUID     string             `bson:"userUid,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d tripDocument) toModel() models.Trip {
	return models.Trip{
		ID:          d.ID.Hex(),
		TripName:    d.TripName,
		Destination: d.Destination,
		StartDate:   models.NewDate(d.StartDate),
		EndDate:     models.NewDate(d.EndDate),
		UserUID:     d.UserUID,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type TripMongo struct {
	coll *mongo.Collection
}

func NewTripMongo(db *mongo.Database) *TripMongo {
	return &TripMongo{coll: db.Collection(tripsCollection)}
}

var _ Trips = (*TripMongo)(nil)

// List returns trips ordered by start date; owner "" lists every trip.
func (r *TripMongo) List(ctx context.Context, owner string) ([]models.Trip, error) {
	filter := bson.M{}
	if owner != "" {
		filter[tripOwnerField] = owner
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find trips: %w", err)
	}
	var docs []tripDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode trips: %w", err)
	}
	out := make([]models.Trip, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *TripMongo) Get(ctx context.Context, id, owner string) (models.Trip, error) {
	filter, err := scopedFilter(id, tripOwnerField, owner)
	if err != nil {
		return models.Trip{}, err
	}
	var doc tripDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return models.Trip{}, notFoundOr(err, "find trip")
	}
	return doc.toModel(), nil
}

func (r *TripMongo) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := tripDocument{
		ID:          primitive.NewObjectID(),
		TripName:    t.TripName,
		Destination: t.Destination,
		StartDate:   t.StartDate.UTC(),
		EndDate:     t.EndDate.UTC(),
		UserUID:     t.UserUID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return models.Trip{}, fmt.Errorf("insert trip: %w", err)
	}
	return doc.toModel(), nil
}

func (r *TripMongo) Update(ctx context.Context, id, owner string, p models.TripPatch) (models.Trip, error) {
	filter, err := scopedFilter(id, tripOwnerField, owner)
	if err != nil {
		return models.Trip{}, err
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.TripName != nil {
		set["tripName"] = *p.TripName
	}
	if p.Destination != nil {
		set["destination"] = *p.Destination
	}
	if p.StartDate != nil {
		set["startDate"] = p.StartDate.UTC()
	}
	if p.EndDate != nil {
		set["endDate"] = p.EndDate.UTC()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc tripDocument
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return models.Trip{}, notFoundOr(err, "update trip")
	}
	return doc.toModel(), nil
}

func (r *TripMongo) Delete(ctx context.Context, id, owner string) error {
	filter, err := scopedFilter(id, tripOwnerField, owner)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
