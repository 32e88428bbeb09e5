// Seeding tool: applies db/schema.sql and optionally db/seed.sql to the
// configured database. User creation is an admin action; this is the
// admin action.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"PROBLEMLINK_BACK-END/internal/config"
)

func main() {
	schemaPath := flag.String("schema", "db/schema.sql", "path to schema file")
	seedPath := flag.String("seed", "db/seed.sql", "path to seed file")
	skipSeed := flag.Bool("skip-seed", false, "apply schema only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	// Simple protocol allows multi-statement scripts
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	apply(pool, *schemaPath)
	if !*skipSeed {
		apply(pool, *seedPath)
	}
	log.Println("done")
}

func apply(pool *pgxpool.Pool, path string) {
	sql, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	if _, err := pool.Exec(context.Background(), string(sql)); err != nil {
		log.Fatalf("apply %s: %v", path, err)
	}
	log.Printf("applied %s", path)
}
