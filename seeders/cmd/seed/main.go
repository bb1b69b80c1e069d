package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"hr-reports/migrations"
	"hr-reports/pkg/config"
	"hr-reports/pkg/database/postgresql"
	apperrors "hr-reports/pkg/errors"
	applogger "hr-reports/pkg/logger"
	"hr-reports/seeders"
)

func main() {
	runMigrate := flag.Bool("migrate", false, "Apply the database schema migrations")
	runLoad := flag.Bool("load", false, "Load the five tables from CSV files")
	csvDir := flag.String("dir", "./data", "Directory holding the CSV files")
	runPreview := flag.Bool("preview", false, "Print the first rows of the joined report")
	department := flag.String("department", "", "Exact department name to filter the preview by")
	limit := flag.Int("limit", 10, "Number of report rows to preview")

	flag.Parse()

	if !*runMigrate && !*runLoad && !*runPreview {
		log.Println("❌ nothing to do")
		log.Println("")
		log.Println("Available flags:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Examples:")
		log.Println("  go run ./seeders/cmd/seed -migrate")
		log.Println("  go run ./seeders/cmd/seed -migrate -load -dir ./data")
		log.Println("  go run ./seeders/cmd/seed -preview -department \"Human Resources\"")
		return
	}

	cfg := config.New()
	logger := applogger.NewLogger(cfg.LogPath)
	defer logger.Sync()

	ctx := context.Background()
	dbPool, err := postgresql.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		var connErr *apperrors.ConnectionError
		if errors.As(err, &connErr) {
			log.Fatalf("❌ database unreachable: %v", err)
		}
		log.Fatalf("❌ %v", err)
	}
	defer dbPool.Close()

	if *runMigrate {
		if err := migrations.Up(dbPool); err != nil {
			log.Fatalf("❌ migrations failed: %v", err)
		}
		log.Println("✅ schema is up to date")
	}

	if *runLoad {
		if err := seeders.LoadAll(ctx, dbPool, logger, *csvDir); err != nil {
			log.Fatalf("❌ load failed: %v", err)
		}
		log.Println("✅ all tables loaded")
	}

	if *runPreview {
		if err := seeders.PreviewReport(ctx, dbPool, logger, os.Stdout, *department, *limit); err != nil {
			log.Fatalf("❌ preview failed: %v", err)
		}
	}
}
