package migrations

import (
	"context"
	"log"

	"racetrack-licensing-api/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// addReferenceNumber backfills a reference number onto every form created
// before the field existed, then enforces uniqueness with an index.
func addReferenceNumber() Step {
	return Step{
		Name: "002-add-reference-number",
		Up: func(ctx context.Context, db *mongo.Database) error {
			forms := db.Collection("forms")

			cursor, err := forms.Find(ctx, bson.M{"referenceNumber": bson.M{"$exists": false}})
			if err != nil {
				return err
			}
			defer cursor.Close(ctx)

			updated := 0
			for cursor.Next(ctx) {
				var doc struct {
					ID interface{} `bson:"_id"`
				}
				if err := cursor.Decode(&doc); err != nil {
					return err
				}

				referenceNumber := utils.GenerateReferenceNumber()
				_, err := forms.UpdateOne(ctx,
					bson.M{"_id": doc.ID},
					bson.M{"$set": bson.M{"referenceNumber": referenceNumber}},
				)
				if err != nil {
					return err
				}
				updated++
			}
			if err := cursor.Err(); err != nil {
				return err
			}
			log.Printf("Backfilled reference numbers on %d forms", updated)

			_, err = forms.Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: "referenceNumber", Value: 1}},
				Options: options.Index().SetUnique(true),
			})
			return err
		},
		Down: func(ctx context.Context, db *mongo.Database) error {
			forms := db.Collection("forms")

			if _, err := forms.Indexes().DropOne(ctx, "referenceNumber_1"); err != nil {
				return err
			}

			_, err := forms.UpdateMany(ctx, bson.M{},
				bson.M{"$unset": bson.M{"referenceNumber": ""}})
			return err
		},
	}
}
