package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RegistrationsRepo interface {
	CreateRegistration(ctx context.Context, registration *Registration) (*Registration, error)
	GetRegistration(ctx context.Context, eventID, studentEmail string) (*Registration, error)
	CountRegistrationsByEvent(ctx context.Context, eventID string) (int64, error)
	ListRegistrationsByEvent(ctx context.Context, eventID string) ([]*Registration, error)
	DeleteRegistrationsByEvent(ctx context.Context, eventID string) (int64, error)
}

// CreateRegistration inserts the registration. The registrations collection
// carries a unique index on (event_id, student_email), so two concurrent
// submissions for the same pair resolve at the store: the loser's duplicate
// key error comes back as ErrAlreadyRegistered.
func (mdb *MongodbRepo) CreateRegistration(ctx context.Context, registration *Registration) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get registrations collection: %w", err)
	}

	if err := registration.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare registration for creation: %w", err)
	}

	if _, err := col.InsertOne(ctx, registration); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to insert registration: %w", err)
	}

	return registration, nil
}

func (mdb *MongodbRepo) GetRegistration(ctx context.Context, eventID, studentEmail string) (*Registration, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get registrations collection: %w", err)
	}

	var registration Registration
	err = col.FindOne(ctx, bson.M{"event_id": eventID, "student_email": studentEmail}).Decode(&registration)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}

	return &registration, nil
}

func (mdb *MongodbRepo) CountRegistrationsByEvent(ctx context.Context, eventID string) (int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationsColName)
	if err != nil {
		return 0, fmt.Errorf("failed to get registrations collection: %w", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	return count, nil
}

func (mdb *MongodbRepo) ListRegistrationsByEvent(ctx context.Context, eventID string) ([]*Registration, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationsColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get registrations collection: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "registered_at", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer cursor.Close(ctx)

	registrations := []*Registration{}
	for cursor.Next(ctx) {
		var registration Registration
		if err := cursor.Decode(&registration); err != nil {
			return nil, fmt.Errorf("failed to decode registration: %w", err)
		}
		registrations = append(registrations, &registration)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return registrations, nil
}

func (mdb *MongodbRepo) DeleteRegistrationsByEvent(ctx context.Context, eventID string) (int64, error) {
	col, err := mdb.GetCollection(ctx, DbName, RegistrationsColName)
	if err != nil {
		return 0, fmt.Errorf("failed to get registrations collection: %w", err)
	}

	res, err := col.DeleteMany(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete registrations: %w", err)
	}

	return res.DeletedCount, nil
}
