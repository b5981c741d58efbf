package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV" envDefault:"development"`
		Port        string `env:"PORT"    envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	Mongo struct {
		URI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
		Database string `env:"MONGODB_DATABASE" envDefault:"rec_spo"`
	}
	Blob struct {
		// Provider selects the remote object storage backend: "cloudinary" or "s3".
		Provider string `env:"BLOB_PROVIDER" envDefault:"cloudinary"`
		Folder   string `env:"BLOB_FOLDER"   envDefault:"uploads"`
	}
	Cloudinary struct {
		CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
		APIKey    string `env:"CLOUDINARY_API_KEY"`
		APISecret string `env:"CLOUDINARY_API_SECRET"`
	}
	S3 struct {
		Region    string `env:"S3_REGION"   envDefault:"us-east-1"`
		Bucket    string `env:"S3_BUCKET"   envDefault:"rec-spo-images"`
		AccessKey string `env:"S3_ACCESS_KEY"`
		SecretKey string `env:"S3_SECRET_KEY"`
		Endpoint  string `env:"S3_ENDPOINT"` // optional, for MinIO / Spaces / R2
	}
	Content struct {
		// Storage selects the content store persistence backend:
		// "file", "postgres" or "memory".
		Storage string `env:"CONTENT_STORAGE"  envDefault:"file"`
		DataDir string `env:"CONTENT_DATA_DIR" envDefault:"./data"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"rec_spo"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
	}
}

// Global DB instance, set by ConnectDB when the postgres content backend is enabled.
var DB *gorm.DB

// Global Mongo database handle, set by ConnectMongo via Initialize.
var Mongo *mongo.Database

var appConfig *Config
var once sync.Once // Used for singleton pattern to load config only once

// LoadConfig loads configuration from environment variables into the Config struct.
// It's designed to be called once.
func LoadConfig() (*Config, error) {
	// Load .env file. It's okay if it doesn't exist, especially in production
	// where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// --- Mongo Configuration ---
	cfg.Mongo.URI = getEnv("MONGODB_URI", "mongodb://localhost:27017")
	cfg.Mongo.Database = getEnv("MONGODB_DATABASE", "rec_spo")

	// --- Blob storage Configuration ---
	cfg.Blob.Provider = getEnv("BLOB_PROVIDER", "cloudinary")
	cfg.Blob.Folder = getEnv("BLOB_FOLDER", "uploads")

	cfg.Cloudinary.CloudName = getEnv("CLOUDINARY_CLOUD_NAME", "")
	cfg.Cloudinary.APIKey = getEnv("CLOUDINARY_API_KEY", "")
	cfg.Cloudinary.APISecret = getEnv("CLOUDINARY_API_SECRET", "")

	cfg.S3.Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3.Bucket = getEnv("S3_BUCKET", "rec-spo-images")
	cfg.S3.AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3.SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", "")

	// --- Content store Configuration ---
	cfg.Content.Storage = getEnv("CONTENT_STORAGE", "file")
	cfg.Content.DataDir = getEnv("CONTENT_DATA_DIR", "./data")

	// --- Database Configuration (postgres content backend) ---
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "rec_spo")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	if cfg.Blob.Provider == "cloudinary" && cfg.Cloudinary.CloudName == "" {
		log.Println("WARNING: BLOB_PROVIDER is cloudinary but CLOUDINARY_CLOUD_NAME is not set. Uploads will fail until credentials are configured.")
	}
	if cfg.DB.Password == "password" && cfg.Content.Storage == "postgres" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg // Set the global instance
	return cfg, nil
}

// ConnectDB establishes a connection to postgres for the content store's
// database backend. It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbCfg.DB.Host,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Port,
		dbCfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent) // Less verbose in production
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB // Set the global DB instance
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// ConnectMongo connects to the image metadata document store and sets the
// global Mongo database handle.
func ConnectMongo(cfg Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	Mongo = client.Database(cfg.Mongo.Database)
	log.Println("Successfully connected to MongoDB!")
	return Mongo, nil
}

// Initialize loads all configurations and connects to the external stores.
// This should be called once at the start of your application (e.g., in main.go).
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg // Ensure global appConfig is set

		if _, err = ConnectMongo(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to mongodb during initialization: %w", err)
			return
		}

		// The postgres connection only backs the content store; skip it for
		// the file and memory backends.
		if appConfig.Content.Storage == "postgres" {
			if _, err = ConnectDB(*appConfig); err != nil {
				loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
				return
			}
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if the configuration has not been loaded yet,
// ensuring that configuration is always available when requested after Initialize().
func GetConfig() *Config {
	if appConfig == nil {
		// This should ideally not happen if Initialize() is called correctly in main.
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
