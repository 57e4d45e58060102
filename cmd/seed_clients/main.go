package main

import (
	"context"
	"log"

	"github.com/BruksfildServices01/pet-control/internal/config"
	dbpkg "github.com/BruksfildServices01/pet-control/internal/db"
	"github.com/BruksfildServices01/pet-control/internal/seed"
)

func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	log.Println("👥 seeding clients...")

	n, err := seed.InsertClients(context.Background(), db)
	if err != nil {
		log.Fatalf("seed clients: %v", err)
	}

	log.Printf("✅ %d clients inserted", n)
}
