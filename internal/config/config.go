package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string
	DSN  string
	Env  string
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Port: getEnv("PORT", "8080"),
		DSN:  mustEnv("DB_DSN"),
		Env:  getEnv("ENV", "dev"),
	}
	logrus.Infof("config loaded: env=%s port=%s", c.Env, c.Port)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		logrus.Fatalf("missing env: %s", k)
	}
	return v
}
