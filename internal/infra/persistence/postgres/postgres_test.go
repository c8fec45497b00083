package postgres

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	pgCfg := &config.PostgresConfig{Database: "shop"}
	conn := config.ConnectionConfig{Host: "db", Port: "5432", UserName: "app", Password: "secret"}

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=shop sslmode=disable TimeZone=UTC",
		buildDSN(pgCfg, conn),
	)

	pgCfg.SSLMode = "require"
	pgCfg.TimeZone = "Asia/Taipei"
	assert.Contains(t, buildDSN(pgCfg, conn), "sslmode=require TimeZone=Asia/Taipei")
}
