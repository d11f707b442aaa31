package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_DefaultsWithMemoryBackend(t *testing.T) {
	setEnv(t, map[string]string{"TOKEN": "tok", "STORE_BACKEND": BackendMemory})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.MaxPerSlot)
	assert.Equal(t, []string{"UTC 13:00", "UTC 14:00"}, cfg.Slots)
	assert.Equal(t, 14*24*time.Hour, cfg.Retention())
	assert.Equal(t, time.Sunday, cfg.SweepDay)
	assert.Equal(t, 24*time.Hour, cfg.SweepInterval)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.True(t, cfg.PostEntryMessage)
}

func TestLoad_CustomSlotsAndDay(t *testing.T) {
	setEnv(t, map[string]string{
		"TOKEN":         "tok",
		"STORE_BACKEND": BackendMemory,
		"SLOTS":         " A , B ,C",
		"SWEEP_DAY":     "Mon",
		"MAX_PER_SLOT":  "5",
		"TIMEZONE":      "Europe/Paris",
	})
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, cfg.Slots)
	assert.Equal(t, time.Monday, cfg.SweepDay)
	assert.Equal(t, 5, cfg.MaxPerSlot)
	assert.Equal(t, "Europe/Paris", cfg.Location.String())
}

func TestLoad_SheetsCredentials(t *testing.T) {
	creds := `{"type":"service_account"}`
	setEnv(t, map[string]string{
		"TOKEN":      "tok",
		"SHEET_URL":  "https://docs.google.com/spreadsheets/d/abc/edit",
		"CREDS_JSON": base64.StdEncoding.EncodeToString([]byte(creds)),
	})
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSheets, cfg.StoreBackend)
	assert.Equal(t, creds, string(cfg.Credentials))
}

func TestValidate_Errors(t *testing.T) {
	base := func() *Config {
		return &Config{
			Token:         "tok",
			MaxPerSlot:    30,
			Slots:         []string{"A"},
			RetentionDays: 14,
			SweepDayName:  "sunday",
			SweepInterval: time.Hour,
			StoreBackend:  BackendMemory,
		}
	}
	tests := map[string]func(c *Config){
		"missing token":   func(c *Config) { c.Token = " " },
		"bad guild":       func(c *Config) { c.GuildID = "abc" },
		"zero capacity":   func(c *Config) { c.MaxPerSlot = 0 },
		"no slots":        func(c *Config) { c.Slots = []string{" "} },
		"duplicate slots": func(c *Config) { c.Slots = []string{"A", "A"} },
		"bad sweep day":   func(c *Config) { c.SweepDayName = "funday" },
		"bad timezone":    func(c *Config) { c.Timezone = "Nowhere/Land" },
		"zero retention":  func(c *Config) { c.RetentionDays = 0 },
		"unknown backend": func(c *Config) { c.StoreBackend = "excel" },
		"sheets no id":    func(c *Config) { c.StoreBackend = BackendSheets },
		"sheets bad creds": func(c *Config) {
			c.StoreBackend = BackendSheets
			c.SheetID = "x"
			c.SheetName = "s"
			c.CredsJSONBase64 = "%%%"
		},
		"sheets no creds":  func(c *Config) { c.StoreBackend = BackendSheets; c.SheetID = "x"; c.SheetName = "s" },
		"postgres bad url": func(c *Config) { c.StoreBackend = BackendPostgres; c.DatabaseURL = "nohost" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := base()
			mutate(c)
			assert.Error(t, c.validate())
		})
	}
}

func TestValidate_PostgresDefaultURL(t *testing.T) {
	c := &Config{
		Token: "tok", MaxPerSlot: 1, Slots: []string{"A"}, RetentionDays: 1,
		SweepDayName: "sunday", SweepInterval: time.Hour, StoreBackend: BackendPostgres,
	}
	require.NoError(t, c.validate())
	assert.Equal(t, "postgres://localhost:5432/slotbot?sslmode=disable", c.DatabaseURL)
}
