package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventsColName = "events"

// Event is a staff-published activity students can register for.
// Date and time are kept as the raw form strings, matching what the
// browser date/time inputs submit.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Venue       string             `bson:"venue" json:"venue" validate:"required"`
	Date        string             `bson:"date" json:"date" validate:"required"`
	Time        string             `bson:"time" json:"time" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Capacity    int                `bson:"capacity" json:"capacity" validate:"min=0"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	StaffID     primitive.ObjectID `bson:"staff_id" json:"staff_id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// EventWithCount decorates an event with its registration count for the
// staff dashboard views.
type EventWithCount struct {
	Event              `bson:",inline"`
	RegistrationsCount int64 `json:"registrations_count"`
}

type EventFilter struct {
	Category string
	Search   string
}

// BuildEventQuery composes the discovery filter: exact category match ANDed
// with a case-insensitive substring match over title OR description. The
// search term is quoted so user input cannot inject regex syntax.
func BuildEventQuery(filter EventFilter) bson.M {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	return query
}

func (e *Event) BeforeCreate() error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	return nil
}
