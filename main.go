package main

import (
	"context"
	"log"
	"time"

	"github.com/Hariharan358/rec-spo/config"
	_ "github.com/Hariharan358/rec-spo/docs"
	"github.com/Hariharan358/rec-spo/internal/blob"
	"github.com/Hariharan358/rec-spo/internal/content"
	"github.com/Hariharan358/rec-spo/internal/image"
	"github.com/Hariharan358/rec-spo/internal/storage"
	"github.com/Hariharan358/rec-spo/routes"
)

// @title REC Sports Club API
// @version 1.0
// @description Content management and image hosting API for the REC sports club.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	// Content store persistence backend
	var backend storage.Store
	switch cfg.Content.Storage {
	case "postgres":
		var err error
		backend, err = storage.NewGormStore(config.DB)
		if err != nil {
			log.Fatalf("Failed to initialize postgres content storage: %v", err)
		}
	case "memory":
		backend = storage.NewMemoryStore()
	default:
		backend = storage.NewFileStore(cfg.Content.DataDir)
	}
	store := content.NewStore(backend)
	log.Printf("Content store ready (%s backend): %d sports, %d events, %d team members",
		cfg.Content.Storage, store.Sports.Len(), store.Events.Len(), store.TeamMembers.Len())

	// Remote blob storage provider
	var blobStorage blob.Storage
	var err error
	switch cfg.Blob.Provider {
	case "s3":
		blobStorage, err = blob.NewS3Storage(blob.S3Config{
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Endpoint:  cfg.S3.Endpoint,
			Folder:    cfg.Blob.Folder,
		})
	default:
		blobStorage, err = blob.NewCloudinaryStorage(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Blob.Folder,
		)
	}
	if err != nil {
		log.Fatalf("Failed to initialize blob storage (%s): %v", cfg.Blob.Provider, err)
	}

	// Image metadata repository
	imagesColl := config.Mongo.Collection("images")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := image.EnsureIndexes(ctx, imagesColl); err != nil {
		log.Printf("WARNING: failed to ensure image indexes: %v", err)
	}
	cancel()
	imageRepo := image.NewImageRepository(imagesColl)

	r := routes.SetupRoutes(store, imageRepo, blobStorage)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
