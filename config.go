package main

import (
	"fmt"
	"os"
)

// Config holds all configuration for the webshop server.
type Config struct {
	Port          string // HTTP port (default: 5000)
	MongoURI      string // MongoDB connection string
	MongoDBName   string // Database name
	SessionSecret string // Cookie signing secret, required
	ProductsFile  string // Path to the static catalog document
	Env           string // "production" enables release mode and secure cookies
}

// LoadConfig loads environment variables into a Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDBName:   os.Getenv("MONGO_DBNAME"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		ProductsFile:  os.Getenv("PRODUCTS_FILE"),
		Env:           os.Getenv("APP_ENV"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDBName == "" {
		cfg.MongoDBName = "webshop"
	}
	if cfg.ProductsFile == "" {
		cfg.ProductsFile = "data/products.json"
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}
