package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultValues(t *testing.T) {
	// 環境変数をクリア
	envVars := []string{
		"PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"NOSHOW_SWEEP_INTERVAL", "NOSHOW_GRACE",
	}
	for _, env := range envVars {
		os.Unsetenv(env)
	}

	cfg := Load()

	// Server defaults
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)

	// Database defaults
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "postgres", cfg.Database.Password)
	assert.Equal(t, "hotel_reservation", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	// Redis defaults
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, "", cfg.Redis.Password)
	assert.Equal(t, 0, cfg.Redis.DB)

	// Worker defaults
	assert.Equal(t, 1*time.Hour, cfg.Worker.SweepInterval)
	assert.Equal(t, 24*time.Hour, cfg.Worker.NoShowGrace)
}

func TestLoad_CustomValues(t *testing.T) {
	// 環境変数を設定
	os.Setenv("PORT", "9090")
	os.Setenv("SERVER_READ_TIMEOUT", "60s")
	os.Setenv("SERVER_WRITE_TIMEOUT", "120s")
	os.Setenv("DB_HOST", "db.example.com")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("DB_SSLMODE", "require")
	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_DB", "1")
	os.Setenv("NOSHOW_SWEEP_INTERVAL", "30m")
	os.Setenv("NOSHOW_GRACE", "48h")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("SERVER_READ_TIMEOUT")
		os.Unsetenv("SERVER_WRITE_TIMEOUT")
		os.Unsetenv("DB_HOST")
		os.Unsetenv("DB_PORT")
		os.Unsetenv("DB_USER")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("DB_NAME")
		os.Unsetenv("DB_SSLMODE")
		os.Unsetenv("REDIS_HOST")
		os.Unsetenv("REDIS_PORT")
		os.Unsetenv("REDIS_PASSWORD")
		os.Unsetenv("REDIS_DB")
		os.Unsetenv("NOSHOW_SWEEP_INTERVAL")
		os.Unsetenv("NOSHOW_GRACE")
	}()

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.Equal(t, "testpass", cfg.Database.Password)
	assert.Equal(t, "testdb", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, "redispass", cfg.Redis.Password)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, 30*time.Minute, cfg.Worker.SweepInterval)
	assert.Equal(t, 48*time.Hour, cfg.Worker.NoShowGrace)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "user=postgres")
	assert.Contains(t, dsn, "password=secret")
	assert.Contains(t, dsn, "dbname=testdb")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := &RedisConfig{
		Host: "localhost",
		Port: "6379",
	}

	addr := cfg.Addr()

	assert.Equal(t, "localhost:6379", addr)
}

func TestGetEnv(t *testing.T) {
	// 環境変数が設定されている場合
	os.Setenv("TEST_ENV_VAR", "custom_value")
	defer os.Unsetenv("TEST_ENV_VAR")

	result := getEnv("TEST_ENV_VAR", "default")
	assert.Equal(t, "custom_value", result)

	// 環境変数が設定されていない場合
	result = getEnv("NON_EXISTENT_VAR", "default")
	assert.Equal(t, "default", result)
}

func TestGetIntEnv(t *testing.T) {
	// 有効な整数
	os.Setenv("TEST_INT", "42")
	defer os.Unsetenv("TEST_INT")

	result := getIntEnv("TEST_INT", 0)
	assert.Equal(t, 42, result)

	// 無効な整数
	os.Setenv("TEST_INVALID_INT", "not_a_number")
	defer os.Unsetenv("TEST_INVALID_INT")

	result = getIntEnv("TEST_INVALID_INT", 99)
	assert.Equal(t, 99, result)

	// 存在しない変数
	result = getIntEnv("NON_EXISTENT_INT", 100)
	assert.Equal(t, 100, result)
}

func TestGetDurationEnv(t *testing.T) {
	// 有効な期間
	os.Setenv("TEST_DURATION", "5m")
	defer os.Unsetenv("TEST_DURATION")

	result := getDurationEnv("TEST_DURATION", time.Second)
	assert.Equal(t, 5*time.Minute, result)

	// 無効な期間
	os.Setenv("TEST_INVALID_DURATION", "invalid")
	defer os.Unsetenv("TEST_INVALID_DURATION")

	result = getDurationEnv("TEST_INVALID_DURATION", 30*time.Second)
	assert.Equal(t, 30*time.Second, result)

	// 存在しない変数
	result = getDurationEnv("NON_EXISTENT_DURATION", time.Minute)
	assert.Equal(t, time.Minute, result)
}
