package models

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Index names created by connect.EnsureIndexes; used to tell which
// uniqueness rule a duplicate key error violated.
const (
	StaffEmailIndexName    = "uniq_staff_email"
	StaffUsernameIndexName = "uniq_staff_username"
)

type StaffRepo interface {
	CreateStaff(ctx context.Context, staff *Staff) (*Staff, error)
	GetStaffByID(ctx context.Context, id primitive.ObjectID) (*Staff, error)
	GetStaffByEmail(ctx context.Context, email string) (*Staff, error)
	GetStaffByUsername(ctx context.Context, username string) (*Staff, error)
}

func (mdb *MongodbRepo) CreateStaff(ctx context.Context, staff *Staff) (*Staff, error) {
	col, err := mdb.GetCollection(ctx, DbName, StaffColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff collection: %w", err)
	}

	if err := staff.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare staff for creation: %w", err)
	}

	if _, err := col.InsertOne(ctx, staff); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), StaffUsernameIndexName) {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert staff: %w", err)
	}

	return staff, nil
}

func (mdb *MongodbRepo) GetStaffByID(ctx context.Context, id primitive.ObjectID) (*Staff, error) {
	return mdb.findStaff(ctx, bson.M{"_id": id})
}

func (mdb *MongodbRepo) GetStaffByEmail(ctx context.Context, email string) (*Staff, error) {
	return mdb.findStaff(ctx, bson.M{"email": email})
}

func (mdb *MongodbRepo) GetStaffByUsername(ctx context.Context, username string) (*Staff, error) {
	return mdb.findStaff(ctx, bson.M{"username": username})
}

func (mdb *MongodbRepo) findStaff(ctx context.Context, filter bson.M) (*Staff, error) {
	col, err := mdb.GetCollection(ctx, DbName, StaffColName)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff collection: %w", err)
	}

	var staff Staff
	err = col.FindOne(ctx, filter).Decode(&staff)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	return &staff, nil
}
