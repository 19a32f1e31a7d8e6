package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const StaffColName = "staff"

type Staff struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Username   string             `bson:"username" json:"username" validate:"required"`
	Password   string             `bson:"password" json:"-"`
	Department string             `bson:"department" json:"department" validate:"required"`
	Phone      string             `bson:"phone" json:"phone" validate:"required"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

func (s *Staff) BeforeCreate() error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	return nil
}
