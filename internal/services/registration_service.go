package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campushub/college-events/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegistrationService struct {
	eventsRepo        models.EventsRepo
	registrationsRepo models.RegistrationsRepo
}

func NewRegistrationService(eventsRepo models.EventsRepo, registrationsRepo models.RegistrationsRepo) *RegistrationService {
	return &RegistrationService{
		eventsRepo:        eventsRepo,
		registrationsRepo: registrationsRepo,
	}
}

type RegistrationInput struct {
	StudentName  string `form:"student_name" json:"student_name"`
	StudentEmail string `form:"student_email" json:"student_email"`
	StudentPhone string `form:"student_phone" json:"student_phone"`
	College      string `form:"college" json:"college"`
}

func (in *RegistrationInput) trim() {
	in.StudentName = strings.TrimSpace(in.StudentName)
	in.StudentEmail = strings.TrimSpace(in.StudentEmail)
	in.StudentPhone = strings.TrimSpace(in.StudentPhone)
	in.College = strings.TrimSpace(in.College)
}

// Submit runs the registration workflow: validate the student fields,
// resolve the event, reject duplicates and full events, then insert.
//
// The pre-insert duplicate lookup is only the friendly fast path; the store's
// unique index on (event_id, student_email) is what guarantees at most one
// registration per pair when submissions race. The capacity count, by
// contrast, is best-effort: a concurrent burst can exceed capacity by the
// number of in-flight requests.
func (rs *RegistrationService) Submit(ctx context.Context, eventID string, in RegistrationInput) (*models.Registration, error) {
	in.trim()
	if in.StudentName == "" || in.StudentEmail == "" || in.StudentPhone == "" || in.College == "" {
		return nil, fmt.Errorf("%w: all fields are required", models.ErrValidation)
	}

	event, err := rs.resolveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	id := event.ID.Hex()

	existing, err := rs.registrationsRepo.GetRegistration(ctx, id, in.StudentEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}
	if existing != nil {
		return nil, models.ErrAlreadyRegistered
	}

	if event.Capacity > 0 {
		count, err := rs.registrationsRepo.CountRegistrationsByEvent(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}
		if count >= int64(event.Capacity) {
			return nil, models.ErrCapacityFull
		}
	}

	registration := &models.Registration{
		EventID:      id,
		StudentName:  in.StudentName,
		StudentEmail: in.StudentEmail,
		StudentPhone: in.StudentPhone,
		College:      in.College,
		RegisteredAt: time.Now(),
	}

	return rs.registrationsRepo.CreateRegistration(ctx, registration)
}

// resolveEvent folds malformed identifiers and genuinely absent events into
// the same not-found error so callers cannot tell the two apart.
func (rs *RegistrationService) resolveEvent(ctx context.Context, eventID string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(eventID))
	if err != nil {
		return nil, models.ErrEventNotFound
	}

	event, err := rs.eventsRepo.GetEventByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to look up event: %w", err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	return event, nil
}
