package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.NotZero(t, cfg.SessionTTL)
	assert.NotZero(t, cfg.CodeTTL)
}

func TestDevMode(t *testing.T) {
	tests := []struct {
		name string
		env  string
		smtp string
		want bool
	}{
		{"default", "", "", true},
		{"production without smtp", "production", "", true},
		{"production with smtp", "production", "smtp.example.com", false},
		{"dev with smtp", "", "smtp.example.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Env: tt.env, SMTPHost: tt.smtp}
			assert.Equal(t, tt.want, cfg.DevMode())
		})
	}
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("SMTP_PORT", "1025")
	assert.Equal(t, 1025, getenvInt("SMTP_PORT", 587))

	t.Setenv("SMTP_PORT", "not-a-number")
	assert.Equal(t, 587, getenvInt("SMTP_PORT", 587))
}
