package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Server      ServerConfig    `mapstructure:"server"`
	Simulator   SimulatorConfig `mapstructure:"simulator"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type SimulatorConfig struct {
	Asset        string  `mapstructure:"asset"`
	InitialPrice float64 `mapstructure:"initial_price"`
	PriceFloor   float64 `mapstructure:"price_floor"`
	MaxHistory   int     `mapstructure:"max_history"`
	TickInterval string  `mapstructure:"tick_interval"`
}

func Load() (*Config, error) {
	// Optional .env for local development; ignore absence.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	// Enable environment variable support
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Normalize environment to lowercase for consistent comparison
	config.Environment = strings.ToLower(config.Environment)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the numeric and duration fields that the simulator and
// scheduler depend on.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Simulator.Asset == "" {
		return fmt.Errorf("simulator asset must not be empty")
	}
	if c.Simulator.InitialPrice <= 0 {
		return fmt.Errorf("simulator initial price must be positive, got %v", c.Simulator.InitialPrice)
	}
	if c.Simulator.PriceFloor <= 0 {
		return fmt.Errorf("simulator price floor must be positive, got %v", c.Simulator.PriceFloor)
	}
	if c.Simulator.MaxHistory < 2 {
		return fmt.Errorf("simulator max history must be at least 2, got %d", c.Simulator.MaxHistory)
	}
	if _, err := time.ParseDuration(c.Simulator.TickInterval); err != nil {
		return fmt.Errorf("invalid tick interval: %w", err)
	}
	return nil
}

// TickInterval returns the parsed tick interval. Validate has already
// checked the string, so parse failures fall back to the default.
func (c *Config) TickInterval() time.Duration {
	d, err := time.ParseDuration(c.Simulator.TickInterval)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	// Server
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})

	// Simulator
	viper.SetDefault("simulator.asset", "BTC/USD")
	viper.SetDefault("simulator.initial_price", 65000.0)
	viper.SetDefault("simulator.price_floor", 10000.0)
	viper.SetDefault("simulator.max_history", 200)
	viper.SetDefault("simulator.tick_interval", "5s")
}
