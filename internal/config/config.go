package config

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"slotbot/pkg/tz"
)

// Store backends.
const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Token               string        `env:"TOKEN"`
	GuildID             string        `env:"GUILD_ID"`
	RegistrationChannel string        `env:"REGISTRATION_CHANNEL" envDefault:"📂〡aoo-registration"`
	PostEntryMessage    bool          `env:"POST_ENTRY_MESSAGE" envDefault:"true"`
	CommandPrefix       string        `env:"COMMAND_PREFIX" envDefault:"!"`
	DefaultLocale       string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	LogVerbosity        int           `env:"LOG_VERBOSITY" envDefault:"0"`
	MaxPerSlot          int           `env:"MAX_PER_SLOT" envDefault:"30"`
	Slots               []string      `env:"SLOTS" envDefault:"UTC 13:00,UTC 14:00" envSeparator:","`
	RetentionDays       int           `env:"RETENTION_WINDOW_DAYS" envDefault:"14"`
	SweepDayName        string        `env:"SWEEP_DAY" envDefault:"sunday"`
	SweepInterval       time.Duration `env:"SWEEP_INTERVAL" envDefault:"24h"`
	Timezone            string        `env:"TIMEZONE" envDefault:"UTC"`
	StoreBackend        string        `env:"STORE_BACKEND" envDefault:"sheets"`
	StoreTimeout        time.Duration `env:"STORE_TIMEOUT" envDefault:"15s"`
	SheetURL            string        `env:"SHEET_URL"`
	SheetID             string        `env:"SHEET_ID"`
	SheetName           string        `env:"SHEET_NAME" envDefault:"AOO Time"`
	CredsJSONBase64     string        `env:"CREDS_JSON"`
	CredsFile           string        `env:"CREDS_FILE"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	MigrationsPath      string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	// Derived by validate.
	SweepDay    time.Weekday
	Location    *time.Location
	Credentials []byte
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, Railway, etc.).
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Retention is the sweep retention window.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}
	if c.GuildID != "" {
		for _, r := range c.GuildID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: GUILD_ID doit être un ID Discord (chiffres uniquement)")
			}
		}
	}
	if c.MaxPerSlot <= 0 {
		return fmt.Errorf("config: MAX_PER_SLOT doit être positif (reçu %d)", c.MaxPerSlot)
	}

	slots := make([]string, 0, len(c.Slots))
	seen := make(map[string]bool, len(c.Slots))
	for _, s := range c.Slots {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if seen[s] {
			return fmt.Errorf("config: SLOTS contient %q en double", s)
		}
		seen[s] = true
		slots = append(slots, s)
	}
	if len(slots) == 0 {
		return fmt.Errorf("config: SLOTS doit contenir au moins un horaire")
	}
	// Discord select menus are limited to 25 options.
	if len(slots) > 25 {
		return fmt.Errorf("config: SLOTS contient %d horaires, 25 au maximum", len(slots))
	}
	c.Slots = slots

	if c.RetentionDays <= 0 {
		return fmt.Errorf("config: RETENTION_WINDOW_DAYS doit être positif (reçu %d)", c.RetentionDays)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("config: SWEEP_INTERVAL doit être positif")
	}
	day, err := tz.ParseWeekday(c.SweepDayName)
	if err != nil {
		return fmt.Errorf("config: SWEEP_DAY invalide: %w", err)
	}
	c.SweepDay = day
	loc, err := tz.Load(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: TIMEZONE invalide: %w", err)
	}
	c.Location = loc

	switch c.StoreBackend {
	case BackendSheets:
		return c.validateSheets()
	case BackendPostgres:
		return c.validatePostgres()
	case BackendMemory:
		return nil
	default:
		return fmt.Errorf("config: STORE_BACKEND inconnu %q (sheets, postgres ou memory)", c.StoreBackend)
	}
}

func (c *Config) validateSheets() error {
	if c.SheetID == "" && c.SheetURL == "" {
		return fmt.Errorf("config: SHEET_URL ou SHEET_ID est requis pour STORE_BACKEND=sheets")
	}
	if strings.TrimSpace(c.SheetName) == "" {
		return fmt.Errorf("config: SHEET_NAME ne peut pas être vide")
	}
	switch {
	case c.CredsJSONBase64 != "":
		creds, err := base64.StdEncoding.DecodeString(strings.TrimSpace(c.CredsJSONBase64))
		if err != nil {
			return fmt.Errorf("config: CREDS_JSON n'est pas du base64 valide: %w", err)
		}
		c.Credentials = creds
	case c.CredsFile != "":
		creds, err := os.ReadFile(c.CredsFile)
		if err != nil {
			return fmt.Errorf("config: lecture de CREDS_FILE: %w", err)
		}
		c.Credentials = creds
	default:
		return fmt.Errorf("config: CREDS_JSON ou CREDS_FILE est requis pour STORE_BACKEND=sheets")
	}
	return nil
}

func (c *Config) validatePostgres() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = "postgres://localhost:5432/slotbot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}
	return nil
}
