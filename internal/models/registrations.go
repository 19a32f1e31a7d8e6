package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RegistrationsColName = "registrations"

// Registration is a student's claim of a seat at an event. EventID holds the
// hex form of the event's ObjectID, a weak reference: deleting the event
// cascades over this field, the store enforces nothing.
type Registration struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID      string             `bson:"event_id" json:"event_id"`
	StudentName  string             `bson:"student_name" json:"student_name"`
	StudentEmail string             `bson:"student_email" json:"student_email"`
	StudentPhone string             `bson:"student_phone" json:"student_phone"`
	College      string             `bson:"college" json:"college"`
	RegisteredAt time.Time          `bson:"registered_at" json:"registered_at"`
}

func (r *Registration) BeforeCreate() error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	return nil
}
