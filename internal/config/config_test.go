package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := FromViper(viper.New())

	assert.Equal(t, "medbill-api", cfg.App.Name)
	assert.Equal(t, "pebble", cfg.Storage.Driver)
	assert.Equal(t, 300*time.Millisecond, cfg.Bill.DebounceWindow)
	assert.Equal(t, "Bhopal", cfg.Bill.DefaultJurisdiction)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 48, cfg.Printer.Width)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "memory")
	v.Set("BILL_DEBOUNCE_MS", 50)
	v.Set("STORE_NAME", "CITY PHARMA")

	cfg := FromViper(v)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 50*time.Millisecond, cfg.Bill.DebounceWindow)
	assert.Equal(t, "CITY PHARMA", cfg.Bill.StoreName)
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: "1", Name: "n", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=1 sslmode=disable TimeZone=UTC", c.DSN())
}
