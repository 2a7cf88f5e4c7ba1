package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"campus-assistant-be/internal/bootstrap"
	"campus-assistant-be/internal/config"
	"campus-assistant-be/pkg/database"

	"gorm.io/gorm"
)

// Seeds the document index from a directory of .txt / .md files. Each
// file becomes one document; indexing runs synchronously so the command
// exits when the index is ready.
func main() {
	dir := flag.String("dir", "documents", "directory of text files to index")
	flag.Parse()

	cfg := config.Load()

	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("Error: Failed to connect to database: %v", err)
		}
		gormDB = db
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("Error: Failed to read %s: %v", *dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".md" {
			continue
		}
		paths = append(paths, filepath.Join(*dir, entry.Name()))
	}
	if len(paths) == 0 {
		log.Fatalf("Error: No .txt or .md files found in %s", *dir)
	}

	if err := container.DocumentService.InitializeDocuments(context.Background(), paths); err != nil {
		log.Fatalf("Error: Seeding failed: %v", err)
	}

	log.Printf("✅ Indexed %d documents from %s", len(paths), *dir)
}
