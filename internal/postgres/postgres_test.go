package postgres

import (
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Postgres{
		Host: "db", Port: 5433, User: "shop", Password: "secret", DBName: "shop", SSLMode: "disable",
	})
	assert.Equal(t, "host=db port=5433 user=shop password=secret dbname=shop sslmode=disable", dsn)
}
