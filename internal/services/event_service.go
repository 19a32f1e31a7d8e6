package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/campushub/college-events/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService struct {
	eventsRepo        models.EventsRepo
	registrationsRepo models.RegistrationsRepo
	logger            *slog.Logger
}

func NewEventService(eventsRepo models.EventsRepo, registrationsRepo models.RegistrationsRepo, logger *slog.Logger) *EventService {
	return &EventService{
		eventsRepo:        eventsRepo,
		registrationsRepo: registrationsRepo,
		logger:            logger,
	}
}

// EventInput carries the raw form fields for create/edit. Capacity arrives
// as the form string and is coerced here.
type EventInput struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Venue       string `form:"venue" json:"venue"`
	Date        string `form:"date" json:"date"`
	Time        string `form:"time" json:"time"`
	Category    string `form:"category" json:"category"`
	Capacity    string `form:"capacity" json:"capacity"`
	Image       string `form:"-" json:"-"`
}

func (in *EventInput) trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Venue = strings.TrimSpace(in.Venue)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Category = strings.TrimSpace(in.Category)
	in.Capacity = strings.TrimSpace(in.Capacity)
}

func (in *EventInput) parseCapacity() (int, error) {
	capacity, err := strconv.Atoi(in.Capacity)
	if err != nil {
		return 0, fmt.Errorf("%w: capacity must be a number", models.ErrValidation)
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: capacity cannot be negative", models.ErrValidation)
	}
	return capacity, nil
}

func (es *EventService) CreateEvent(ctx context.Context, staffID string, in EventInput) (*models.Event, error) {
	in.trim()
	if in.Title == "" || in.Description == "" || in.Venue == "" || in.Date == "" ||
		in.Time == "" || in.Category == "" || in.Capacity == "" {
		return nil, fmt.Errorf("%w: all fields are required", models.ErrValidation)
	}

	capacity, err := in.parseCapacity()
	if err != nil {
		return nil, err
	}

	ownerID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, fmt.Errorf("invalid staff identity in session: %v", err)
	}

	now := time.Now()
	event := &models.Event{
		Title:       in.Title,
		Description: in.Description,
		Venue:       in.Venue,
		Date:        in.Date,
		Time:        in.Time,
		Category:    in.Category,
		Capacity:    capacity,
		Image:       in.Image,
		StaffID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := models.Validate.Struct(event); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	return es.eventsRepo.CreateEvent(ctx, event)
}

// UpdateEvent replaces the descriptive fields of an event the caller owns.
// An empty in.Image keeps the stored image reference untouched.
func (es *EventService) UpdateEvent(ctx context.Context, staffID, eventID string, in EventInput) (*models.Event, error) {
	event, err := es.ownedEvent(ctx, staffID, eventID)
	if err != nil {
		return nil, err
	}

	in.trim()
	if in.Title == "" || in.Description == "" || in.Venue == "" || in.Date == "" ||
		in.Time == "" || in.Category == "" || in.Capacity == "" {
		return nil, fmt.Errorf("%w: all fields are required", models.ErrValidation)
	}

	capacity, err := in.parseCapacity()
	if err != nil {
		return nil, err
	}

	event.Title = in.Title
	event.Description = in.Description
	event.Venue = in.Venue
	event.Date = in.Date
	event.Time = in.Time
	event.Category = in.Category
	event.Capacity = capacity
	event.UpdatedAt = time.Now()
	if in.Image != "" {
		event.Image = in.Image
	}

	if err := es.eventsRepo.UpdateEvent(ctx, event.ID, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes an event the caller owns and cascades over its
// registrations. The cascade is fire-and-forget: orphaned registrations
// reference a dead event id and are unreachable from any lookup, so a
// cascade failure is logged rather than surfaced.
func (es *EventService) DeleteEvent(ctx context.Context, staffID, eventID string) error {
	event, err := es.ownedEvent(ctx, staffID, eventID)
	if err != nil {
		return err
	}

	if err := es.eventsRepo.DeleteEvent(ctx, event.ID); err != nil {
		return err
	}

	if _, err := es.registrationsRepo.DeleteRegistrationsByEvent(ctx, event.ID.Hex()); err != nil {
		es.logger.Error("failed to cascade registration delete",
			"event_id", event.ID.Hex(),
			"error", err,
		)
	}

	return nil
}

func (es *EventService) ListEvents(ctx context.Context, category, search string, limit int64) ([]*models.Event, error) {
	filter := models.EventFilter{
		Category: strings.TrimSpace(category),
		Search:   strings.TrimSpace(search),
	}
	return es.eventsRepo.ListEvents(ctx, filter, limit)
}

func (es *EventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return es.resolveEvent(ctx, eventID)
}

// ListStaffEvents returns the caller's events with their registration counts
// for the dashboard views.
func (es *EventService) ListStaffEvents(ctx context.Context, staffID string) ([]*models.EventWithCount, error) {
	ownerID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, fmt.Errorf("invalid staff identity in session: %v", err)
	}

	events, err := es.eventsRepo.ListEventsByStaff(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]*models.EventWithCount, 0, len(events))
	for _, event := range events {
		count, err := es.registrationsRepo.CountRegistrationsByEvent(ctx, event.ID.Hex())
		if err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}
		out = append(out, &models.EventWithCount{Event: *event, RegistrationsCount: count})
	}

	return out, nil
}

// ListEventRegistrations returns the registrations of an event the caller owns.
func (es *EventService) ListEventRegistrations(ctx context.Context, staffID, eventID string) (*models.Event, []*models.Registration, error) {
	event, err := es.ownedEvent(ctx, staffID, eventID)
	if err != nil {
		return nil, nil, err
	}

	registrations, err := es.registrationsRepo.ListRegistrationsByEvent(ctx, event.ID.Hex())
	if err != nil {
		return nil, nil, err
	}

	return event, registrations, nil
}

// GetOwnedEvent resolves an event and enforces that the caller owns it,
// for the edit form prefill.
func (es *EventService) GetOwnedEvent(ctx context.Context, staffID, eventID string) (*models.Event, error) {
	return es.ownedEvent(ctx, staffID, eventID)
}

func (es *EventService) ownedEvent(ctx context.Context, staffID, eventID string) (*models.Event, error) {
	event, err := es.resolveEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.StaffID.Hex() != staffID {
		return nil, models.ErrForbidden
	}
	return event, nil
}

func (es *EventService) resolveEvent(ctx context.Context, eventID string) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(eventID))
	if err != nil {
		return nil, models.ErrEventNotFound
	}

	event, err := es.eventsRepo.GetEventByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to look up event: %w", err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	return event, nil
}
