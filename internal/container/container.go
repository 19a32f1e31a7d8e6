package container

import (
	"log/slog"

	"github.com/campushub/college-events/internal/config"
	"github.com/campushub/college-events/internal/models"
	"github.com/campushub/college-events/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client

	EventService        *services.EventService
	RegistrationService *services.RegistrationService
	StaffService        *services.StaffService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	eventService := services.NewEventService(repo, repo, logger)
	registrationService := services.NewRegistrationService(repo, repo)
	staffService := services.NewStaffService(repo, cfg.SecretKey)

	return &Container{
		Logger:              logger,
		Config:              cfg,
		MongoDBClient:       mongoDBClient,
		EventService:        eventService,
		RegistrationService: registrationService,
		StaffService:        staffService,
	}
}
