package config

import (
	"os"
)

// Database configuration struct.
type DatabaseConfiguration struct {
	URL            string
	Database       string
	MigrationsPath string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Bucket configuration for the audit log uploads.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// Server configuration struct.
type ServerConfiguration struct {
	Port string
}

var (
	Database DatabaseConfiguration
	Redis    RedisConfiguration
	Bucket   BucketConfiguration
	Server   ServerConfiguration
)

// Load the variables.
func LoadEnv() {
	// Load the database configuration.
	Database.URL = os.Getenv("DATABASE_URL")
	Database.Database = os.Getenv("DATABASE_NAME")
	Database.MigrationsPath = os.Getenv("MIGRATIONS_PATH")
	if Database.MigrationsPath == "" {
		Database.MigrationsPath = "migrations"
	}

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the bucket configuration.
	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")

	// Load the server configuration.
	Server.Port = os.Getenv("SERVER_PORT")
	if Server.Port == "" {
		Server.Port = "8080"
	}
}
