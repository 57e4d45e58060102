package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/BruksfildServices01/pet-control/internal/config"
	dbpkg "github.com/BruksfildServices01/pet-control/internal/db"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("❌ connect: %v", err)
	}
	defer conn.Close(context.Background())

	log.Println("🚀 applying schema...")

	if _, err := conn.Exec(ctx, dbpkg.Schema); err != nil {
		log.Fatalf("❌ apply schema: %v", err)
	}

	log.Println("✨ schema applied")
}
