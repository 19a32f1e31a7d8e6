package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/campushub/college-events/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockEventsRepo is an in-memory implementation of models.EventsRepo.
type mockEventsRepo struct {
	mu     sync.Mutex
	events map[primitive.ObjectID]models.Event
}

func newMockEventsRepo() *mockEventsRepo {
	return &mockEventsRepo{events: make(map[primitive.ObjectID]models.Event)}
}

func (r *mockEventsRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := event.BeforeCreate(); err != nil {
		return nil, err
	}
	r.events[event.ID] = *event
	return event, nil
}

func (r *mockEventsRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	return &event, nil
}

func (r *mockEventsRepo) ListEvents(ctx context.Context, filter models.EventFilter, limit int64) ([]*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := []*models.Event{}
	for _, event := range r.events {
		if filter.Category != "" && event.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			title := strings.ToLower(event.Title)
			description := strings.ToLower(event.Description)
			if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
				continue
			}
		}
		event := event
		matched = append(matched, &event)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })
	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *mockEventsRepo) ListEventsByStaff(ctx context.Context, staffID primitive.ObjectID) ([]*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := []*models.Event{}
	for _, event := range r.events {
		if event.StaffID == staffID {
			event := event
			matched = append(matched, &event)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date > matched[j].Date })
	return matched, nil
}

func (r *mockEventsRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return models.ErrEventNotFound
	}
	r.events[id] = *event
	return nil
}

func (r *mockEventsRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

// mockRegistrationsRepo enforces the (event_id, student_email) unique
// constraint under a mutex, mirroring the store-level unique index.
type mockRegistrationsRepo struct {
	mu   sync.Mutex
	regs map[string]models.Registration
}

func newMockRegistrationsRepo() *mockRegistrationsRepo {
	return &mockRegistrationsRepo{regs: make(map[string]models.Registration)}
}

func regKey(eventID, email string) string {
	return eventID + "|" + email
}

func (r *mockRegistrationsRepo) CreateRegistration(ctx context.Context, registration *models.Registration) (*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := regKey(registration.EventID, registration.StudentEmail)
	if _, exists := r.regs[key]; exists {
		return nil, models.ErrAlreadyRegistered
	}
	if err := registration.BeforeCreate(); err != nil {
		return nil, err
	}
	r.regs[key] = *registration
	return registration, nil
}

func (r *mockRegistrationsRepo) GetRegistration(ctx context.Context, eventID, studentEmail string) (*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	registration, ok := r.regs[regKey(eventID, studentEmail)]
	if !ok {
		return nil, nil
	}
	return &registration, nil
}

func (r *mockRegistrationsRepo) CountRegistrationsByEvent(ctx context.Context, eventID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, registration := range r.regs {
		if registration.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *mockRegistrationsRepo) ListRegistrationsByEvent(ctx context.Context, eventID string) ([]*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := []*models.Registration{}
	for _, registration := range r.regs {
		if registration.EventID == eventID {
			registration := registration
			matched = append(matched, &registration)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].RegisteredAt.Before(matched[j].RegisteredAt)
	})
	return matched, nil
}

func (r *mockRegistrationsRepo) DeleteRegistrationsByEvent(ctx context.Context, eventID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for key, registration := range r.regs {
		if registration.EventID == eventID {
			delete(r.regs, key)
			deleted++
		}
	}
	return deleted, nil
}

// mockStaffRepo enforces the unique email and username rules the staff
// collection indexes provide.
type mockStaffRepo struct {
	mu    sync.Mutex
	staff map[primitive.ObjectID]models.Staff
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staff: make(map[primitive.ObjectID]models.Staff)}
}

func (r *mockStaffRepo) CreateStaff(ctx context.Context, staff *models.Staff) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.staff {
		if existing.Email == staff.Email {
			return nil, models.ErrEmailTaken
		}
		if existing.Username == staff.Username {
			return nil, models.ErrUsernameTaken
		}
	}
	if err := staff.BeforeCreate(); err != nil {
		return nil, err
	}
	r.staff[staff.ID] = *staff
	return staff, nil
}

func (r *mockStaffRepo) GetStaffByID(ctx context.Context, id primitive.ObjectID) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	staff, ok := r.staff[id]
	if !ok {
		return nil, nil
	}
	return &staff, nil
}

func (r *mockStaffRepo) GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, staff := range r.staff {
		if staff.Email == email {
			staff := staff
			return &staff, nil
		}
	}
	return nil, nil
}

func (r *mockStaffRepo) GetStaffByUsername(ctx context.Context, username string) (*models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, staff := range r.staff {
		if staff.Username == username {
			staff := staff
			return &staff, nil
		}
	}
	return nil, nil
}
