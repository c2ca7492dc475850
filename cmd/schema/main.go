package main

import (
	"fatecord/app"
	"log"
	"os"
)

func main() {
	path := os.Getenv("FATECORD_DB")
	if path == "" {
		path = "./fatecord.db"
	}

	db, err := app.OpenDB(path)
	if err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
}
