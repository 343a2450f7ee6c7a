package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "racetrack-licensing-api/docs"
	"racetrack-licensing-api/src/controllers"
	"racetrack-licensing-api/src/database"
	"racetrack-licensing-api/src/migrations"
	"racetrack-licensing-api/src/routes"
	"racetrack-licensing-api/src/seeder"
	"racetrack-licensing-api/src/services/forms"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// @title Racetrack Licensing API
// @version 1.0
// @description Greyhound racetrack welfare licence application forms
// @BasePath /
func main() {
	ctx := context.Background()

	client, err := database.Connect(ctx)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Println("Error disconnecting MongoDB client:", err)
		}
	}()

	db := client.Database(database.DatabaseName())

	// Migrations must complete before the service accepts traffic; any
	// failure here is fatal to startup.
	if err := migrations.Run(ctx, db); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	formService := forms.NewService(db)

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := seeder.SeedSampleForms(ctx, formService); err != nil {
			log.Println("Error seeding sample data:", err)
		}
	}

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, controllers.NewFormController(formService))

	port := os.Getenv("APP_URI")
	if port == "" {
		port = "8888"
	}

	log.Println("Server is running on port " + port)
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal(err)
	}
}
