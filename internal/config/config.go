package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
}

// BucketConfig names the four per-stage buckets.
type BucketConfig struct {
	References     string
	AllPhotos      string
	SelectedPhotos string
	FinalPhotos    string
}

type Config struct {
	R2      R2Config
	Buckets BucketConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Buckets.References = getenv("BUCKET_REFERENCES", "client-references")
	cfg.Buckets.AllPhotos = getenv("BUCKET_ALL_PHOTOS", "client-all-photos")
	cfg.Buckets.SelectedPhotos = getenv("BUCKET_SELECTED_PHOTOS", "client-selected-photos")
	cfg.Buckets.FinalPhotos = getenv("BUCKET_FINAL_PHOTOS", "client-final-photos")

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
