package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "value")
	assert.Equal(t, "value", GetEnvAsString("TEST_ENV_STRING", "default"))

	t.Setenv("TEST_ENV_STRING", "")
	assert.Equal(t, "default", GetEnvAsString("TEST_ENV_STRING", "default"))
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid number", "42", 42},
		{"unset", "", 7},
		{"not a number", "abc", 7},
		{"negative", "-3", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvAsInt("TEST_ENV_INT", 7))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"valid duration", "90s", 90 * time.Second},
		{"unset", "", time.Minute},
		{"bare number is rejected", "30", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_DURATION", tt.value)
			assert.Equal(t, tt.want, GetEnvAsDuration("TEST_ENV_DURATION", time.Minute))
		})
	}
}

func TestGetEnvAsStringSlice(t *testing.T) {
	def := []string{"*"}
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"unset", "", def},
		{"single", "http://localhost:3000", []string{"http://localhost:3000"}},
		{"trims and drops blanks", " http://a.test , ,http://b.test ", []string{"http://a.test", "http://b.test"}},
		{"only separators", " , ", def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_ENV_SLICE", tt.value)
			assert.Equal(t, tt.want, GetEnvAsStringSlice("TEST_ENV_SLICE", def))
		})
	}
}
