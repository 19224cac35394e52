package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avstrong/hotelledger/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOTEL_DB_PATH", "")
	t.Setenv("HOTEL_CURRENCY", "")

	conf := config.Load()

	assert.Equal(t, "db.json", conf.DBPath)
	assert.Equal(t, "$", conf.Currency)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOTEL_DB_PATH", "/tmp/hotel.json")
	t.Setenv("HOTEL_CURRENCY", "€")

	conf := config.Load()

	assert.Equal(t, "/tmp/hotel.json", conf.DBPath)
	assert.Equal(t, "€", conf.Currency)
}
