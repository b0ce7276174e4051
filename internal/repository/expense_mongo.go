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

const expenseOwnerField = "userId"

type expenseDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      string             `bson:"userId"`
	TripID      string             `bson:"tripId,omitempty"`
	Amount      float64            `bson:"amount"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
}

func (d expenseDocument) toModel() models.Expense {
	return models.Expense{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		TripID:      d.TripID,
		Amount:      d.Amount,
		Description: d.Description,
		Date:        models.NewDate(d.Date),
	}
}

type ExpenseMongo struct {
	coll *mongo.Collection
}

func NewExpenseMongo(db *mongo.Database) *ExpenseMongo {
	return &ExpenseMongo{coll: db.Collection(expensesCollection)}
}

var _ Expenses = (*ExpenseMongo)(nil)

// List returns matching expenses, newest first.
func (r *ExpenseMongo) List(ctx context.Context, f models.ExpenseFilter) ([]models.Expense, error) {
	filter := bson.M{}
	if f.UserID != "" {
		filter[expenseOwnerField] = f.UserID
	}
	if f.TripID != "" {
		filter["tripId"] = f.TripID
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}
	var docs []expenseDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	out := make([]models.Expense, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *ExpenseMongo) Get(ctx context.Context, id, owner string) (models.Expense, error) {
	filter, err := scopedFilter(id, expenseOwnerField, owner)
	if err != nil {
		return models.Expense{}, err
	}
	var doc expenseDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return models.Expense{}, notFoundOr(err, "find expense")
	}
	return doc.toModel(), nil
}

func (r *ExpenseMongo) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	doc := expenseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      e.UserID,
		TripID:      e.TripID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	return doc.toModel(), nil
}

func (r *ExpenseMongo) Update(ctx context.Context, id, owner string, p models.ExpensePatch) (models.Expense, error) {
	filter, err := scopedFilter(id, expenseOwnerField, owner)
	if err != nil {
		return models.Expense{}, err
	}
	set := bson.M{}
	if p.Amount != nil {
		set["amount"] = *p.Amount
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Date != nil {
		set["date"] = p.Date.UTC()
	}
	if p.TripID != nil {
		set["tripId"] = *p.TripID
	}
	if len(set) == 0 {
		return r.Get(ctx, id, owner)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc expenseDocument
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return models.Expense{}, notFoundOr(err, "update expense")
	}
	return doc.toModel(), nil
}

func (r *ExpenseMongo) Delete(ctx context.Context, id, owner string) error {
	filter, err := scopedFilter(id, expenseOwnerField, owner)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
