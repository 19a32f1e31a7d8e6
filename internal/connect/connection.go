package connect

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/college-events/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func MongoDBConnect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	return client, nil
}

func MongoDBDisconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %v", err)
	}
	return nil
}

// EnsureIndexes creates the unique indexes the workflows rely on. The
// compound index on registrations is what makes concurrent duplicate
// submissions lose at the store instead of racing the application check.
func EnsureIndexes(ctx context.Context, client *mongo.Client) error {
	db := client.Database(models.DbName)

	registrations := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "student_email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_event_student"),
		},
	}
	if _, err := db.Collection(models.RegistrationsColName).Indexes().CreateMany(ctx, registrations); err != nil {
		return fmt.Errorf("failed to create registration indexes: %v", err)
	}

	staff := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(models.StaffEmailIndexName),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(models.StaffUsernameIndexName),
		},
	}
	if _, err := db.Collection(models.StaffColName).Indexes().CreateMany(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff indexes: %v", err)
	}

	return nil
}
