package migrations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"racetrack-licensing-api/src/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record marks a migration as durably applied. Its presence is
// authoritative: the runner never re-applies a recorded migration.
type Record struct {
	Name      string    `bson:"name" json:"name"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// recordStore is the bookkeeping side of the runner, split out so the run
// protocol can be exercised without a live database.
type recordStore interface {
	ensure(ctx context.Context) error
	applied(ctx context.Context, name string) (bool, error)
	record(ctx context.Context, name string) error
	lastApplied(ctx context.Context) (string, error)
	remove(ctx context.Context, name string) error
}

// Run executes every unapplied migration in order against a borrowed
// database handle. The caller retains ownership of the connection. The
// first failing step aborts the run; nothing after it is attempted.
func Run(ctx context.Context, db *mongo.Database) error {
	return runSteps(ctx, All(), db, &mongoRecords{collection: db.Collection("migrations")})
}

// RunStandalone opens its own connection, runs the migrations and closes
// the connection again. For invocation outside the main process.
func RunStandalone(ctx context.Context) error {
	client, err := database.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Println("Error disconnecting MongoDB client:", err)
		}
	}()

	return Run(ctx, client.Database(database.DatabaseName()))
}

// RollbackLast reverts the most recently recorded migration and removes its
// record. Nothing happens when no migration has run.
func RollbackLast(ctx context.Context, db *mongo.Database) error {
	return rollbackLast(ctx, All(), db, &mongoRecords{collection: db.Collection("migrations")})
}

// RollbackLastStandalone is RollbackLast over an owned connection.
func RollbackLastStandalone(ctx context.Context) error {
	client, err := database.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Println("Error disconnecting MongoDB client:", err)
		}
	}()

	return RollbackLast(ctx, client.Database(database.DatabaseName()))
}

func runSteps(ctx context.Context, steps []Step, db *mongo.Database, records recordStore) error {
	log.Println("Running migrations...")

	if err := records.ensure(ctx); err != nil {
		return fmt.Errorf("ensuring migrations collection: %w", err)
	}

	for _, step := range steps {
		done, err := records.applied(ctx, step.Name)
		if err != nil {
			return fmt.Errorf("checking migration %s: %w", step.Name, err)
		}
		if done {
			log.Printf("Migration %s already run, skipping...", step.Name)
			continue
		}

		log.Printf("Running migration: %s...", step.Name)
		if err := step.Up(ctx, db); err != nil {
			return fmt.Errorf("migration %s failed: %w", step.Name, err)
		}

		if err := records.record(ctx, step.Name); err != nil {
			return fmt.Errorf("recording migration %s: %w", step.Name, err)
		}
		log.Printf("Migration %s completed successfully", step.Name)
	}

	log.Println("All migrations completed successfully")
	return nil
}

func rollbackLast(ctx context.Context, steps []Step, db *mongo.Database, records recordStore) error {
	log.Println("Rolling back last migration...")

	name, err := records.lastApplied(ctx)
	if err != nil {
		return err
	}
	if name == "" {
		log.Println("No migrations to roll back")
		return nil
	}

	var step *Step
	for i := range steps {
		if steps[i].Name == name {
			step = &steps[i]
			break
		}
	}
	if step == nil {
		return fmt.Errorf("migration %s not found in registry, cannot roll back", name)
	}

	log.Printf("Rolling back migration: %s...", name)
	if err := step.Down(ctx, db); err != nil {
		return fmt.Errorf("rollback of %s failed: %w", name, err)
	}

	if err := records.remove(ctx, name); err != nil {
		return err
	}
	log.Printf("Migration %s rolled back successfully", name)
	return nil
}

// mongoRecords keeps migration records in the migrations collection.
type mongoRecords struct {
	collection *mongo.Collection
}

func (m *mongoRecords) ensure(ctx context.Context) error {
	err := m.collection.Database().CreateCollection(ctx, m.collection.Name())
	if err != nil && !isNamespaceExists(err) {
		return err
	}
	return nil
}

func (m *mongoRecords) applied(ctx context.Context, name string) (bool, error) {
	err := m.collection.FindOne(ctx, bson.M{"name": name}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (m *mongoRecords) record(ctx context.Context, name string) error {
	_, err := m.collection.InsertOne(ctx, Record{Name: name, Timestamp: time.Now()})
	return err
}

func (m *mongoRecords) lastApplied(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var record Record
	err := m.collection.FindOne(ctx, bson.M{}, opts).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", err
	}
	return record.Name, nil
}

func (m *mongoRecords) remove(ctx context.Context, name string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"name": name})
	return err
}

// isNamespaceExists reports whether err is the server complaining that a
// collection already exists (error code 48).
func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == 48
}
