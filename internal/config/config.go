package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/username/reformcal/internal/engine"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig holds the reformation parameters. The defaults are the
// historical 1582 reformation; overriding them yields a hypothetical
// calendar, which is mainly useful for tests.
type CalendarConfig struct {
	ReformationYear  int `mapstructure:"reformation_year"`
	ReformationMonth int `mapstructure:"reformation_month"`
	ReformationStep  int `mapstructure:"reformation_step"`
	FirstSkippedDay  int `mapstructure:"first_skipped_day"`
}

// ServerConfig configures the serve subcommand
type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	ShutdownTimeout string `mapstructure:"shutdown_timeout"`
}

// LogConfig configures logging output
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing config file is not an
// error unless the path was given explicitly; the defaults produce the
// historical calendar, so the plain CLI never needs a config file.
func Load(configPath string) (*Config, error) {
	// Pick up a local .env before viper reads the environment
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.reformcal")
		v.AutomaticEnv()

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.reformation_year", engine.Gregorian1582.Year)
	v.SetDefault("calendar.reformation_month", int(engine.Gregorian1582.Month))
	v.SetDefault("calendar.reformation_step", engine.Gregorian1582.Step)
	v.SetDefault("calendar.first_skipped_day", engine.Gregorian1582.FirstSkipped)
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	cal := c.Calendar

	if cal.ReformationYear < 1 {
		return fmt.Errorf("calendar.reformation_year must be >= 1")
	}
	if cal.ReformationMonth < 1 || cal.ReformationMonth > 12 {
		return fmt.Errorf("calendar.reformation_month must be in [1, 12]")
	}
	if cal.ReformationStep < 1 {
		return fmt.Errorf("calendar.reformation_step must be positive")
	}
	if cal.FirstSkippedDay < 2 {
		return fmt.Errorf("calendar.first_skipped_day must be >= 2 so day 1 stays in the month")
	}

	// The skipped range has to end strictly inside the month. The
	// reformation year is on the Julian side of its own cutover, so the
	// plain mod-4 rule decides February's length.
	month := time.Month(cal.ReformationMonth)
	length := engine.MonthLength(month, cal.ReformationYear%4 == 0)
	if cal.FirstSkippedDay+cal.ReformationStep-1 >= length {
		return fmt.Errorf("calendar: skipped days %d-%d do not fit inside a %d-day month",
			cal.FirstSkippedDay, cal.FirstSkippedDay+cal.ReformationStep-1, length)
	}

	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}

	return nil
}

// Reformation returns the engine parameters described by the config.
// The historical defaults map to the fixed Gregorian1582 constant; any
// other values derive a hypothetical reformation.
func (c *CalendarConfig) Reformation() engine.Reformation {
	historical := engine.Gregorian1582
	if c.ReformationYear == historical.Year &&
		time.Month(c.ReformationMonth) == historical.Month &&
		c.ReformationStep == historical.Step &&
		c.FirstSkippedDay == historical.FirstSkipped {
		return historical
	}
	return engine.NewReformation(
		c.ReformationYear,
		time.Month(c.ReformationMonth),
		c.ReformationStep,
		c.FirstSkippedDay,
	)
}

// GetShutdownTimeout returns the graceful shutdown timeout
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 10 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return duration
}
