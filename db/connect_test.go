package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDBEnv(t *testing.T) {
	for _, k := range []string{"DB_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		t.Setenv(k, "")
	}
}

func TestDSNFromURLAddsSSLMode(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_URL", "postgres://u:p@db.example.com:5432/bank")
	dsn, err := DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db.example.com:5432/bank?sslmode=require", dsn)

	t.Setenv("DB_URL", "postgres://u:p@db.example.com/bank?connect_timeout=5")
	dsn, err = DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db.example.com/bank?connect_timeout=5&sslmode=require", dsn)

	t.Setenv("DB_URL", "postgres://u:p@db/bank?sslmode=disable")
	dsn, err = DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db/bank?sslmode=disable", dsn)
}

func TestDSNFromParts(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "portal")

	dsn, err := DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "dbname=portal")
}

func TestDSNMissingConfig(t *testing.T) {
	clearDBEnv(t)
	_, err := DSN()
	assert.Error(t, err)
}
