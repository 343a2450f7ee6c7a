package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// createFormsCollection creates the forms collection with its query indexes.
func createFormsCollection() Step {
	indexKeys := []string{"formName", "status", "createdAt", "updatedAt"}

	return Step{
		Name: "001-create-forms-collection",
		Up: func(ctx context.Context, db *mongo.Database) error {
			if err := db.CreateCollection(ctx, "forms"); err != nil && !isNamespaceExists(err) {
				return err
			}

			forms := db.Collection("forms")
			for _, key := range indexKeys {
				_, err := forms.Indexes().CreateOne(ctx, mongo.IndexModel{
					Keys: bson.D{{Key: key, Value: 1}},
				})
				if err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(ctx context.Context, db *mongo.Database) error {
			forms := db.Collection("forms")
			for _, key := range indexKeys {
				if _, err := forms.Indexes().DropOne(ctx, key+"_1"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
