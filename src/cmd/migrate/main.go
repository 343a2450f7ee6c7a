// Standalone migration runner.
//
// Usage:
//
//	go run ./src/cmd/migrate            run pending migrations
//	go run ./src/cmd/migrate rollback   roll back the last migration
package main

import (
	"context"
	"log"
	"os"

	"racetrack-licensing-api/src/migrations"
)

func main() {
	ctx := context.Background()

	rollback := len(os.Args) > 1 && os.Args[1] == "rollback"

	var err error
	if rollback {
		err = migrations.RollbackLastStandalone(ctx)
	} else {
		err = migrations.RunStandalone(ctx)
	}

	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
