package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/chirp")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "test")

	c := Load()
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/chirp", c.DSN)
	assert.Equal(t, "test", c.Env)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/chirp")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")

	c := Load()
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "dev", c.Env)
}
