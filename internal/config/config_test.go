package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:               "8080",
		Environment:        "development",
		DatabaseURL:        "postgres://localhost/circleup",
		JWTSecret:          "a-real-secret",
		BCryptCost:         10,
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 720 * time.Hour,
		StoryRetention:     24 * time.Hour,
		LocalUploadDir:     "./uploads",
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_DefaultSecretInProduction(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = "production"
	cfg.JWTSecret = "your-super-secret-key-change-this-in-production"

	assert.Error(t, cfg.Validate())
}

func TestValidate_DefaultSecretInDevelopment(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = "your-super-secret-key-change-this-in-production"

	// The placeholder secret is only rejected in production
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadBCryptCost(t *testing.T) {
	cfg := validConfig()
	cfg.BCryptCost = 99

	assert.Error(t, cfg.Validate())
}

func TestValidate_S3WithoutBucket(t *testing.T) {
	cfg := validConfig()
	cfg.UseS3 = true
	cfg.S3Bucket = ""

	assert.Error(t, cfg.Validate())
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Environment = "production"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
