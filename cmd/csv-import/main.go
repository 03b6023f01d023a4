// csv-import bulk-loads a CSV file into a running schedule service, one
// create request per row. Rows that do not survive the import rules are
// dropped before submission; server-side rejections after that are counted
// as failed. Neither aborts the run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/EmreHacihassan/Tarih/internal/csvimport"
)

func main() {
	_ = godotenv.Load()

	var (
		file   = flag.String("file", "", "path to the CSV file to import")
		server = flag.String("server", envOr("SCHEDULE_SERVER", "http://localhost:3000"), "base URL of the schedule service")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatal("cannot open csv file", zap.String("file", *file), zap.Error(err))
	}
	defer f.Close()

	importer := csvimport.NewImporter(*server, logger)
	result, err := importer.Run(context.Background(), f)
	if err != nil {
		logger.Fatal("import aborted", zap.Error(err))
	}

	logger.Info("import finished",
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed),
		zap.Int("rejected", result.Rejected))
	fmt.Printf("imported %d, failed %d, rejected %d\n",
		result.Imported, result.Failed, result.Rejected)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
