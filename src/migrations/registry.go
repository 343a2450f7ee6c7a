package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Step is one named, one-time schema/data transformation. Registry order is
// execution order; earlier steps complete (or are skipped as already
// applied) before later ones are attempted.
type Step struct {
	Name string
	Up   func(ctx context.Context, db *mongo.Database) error
	Down func(ctx context.Context, db *mongo.Database) error
}

// All returns every registered migration in execution order. Steps are
// registered statically here, never discovered dynamically.
func All() []Step {
	return []Step{
		createFormsCollection(),
		addReferenceNumber(),
	}
}
