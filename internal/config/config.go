package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"mafia/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"8080"`
	Env  string `envconfig:"ENV" default:"development"` // "development" or "production"
}

// GameConfig holds game-related configuration
type GameConfig struct {
	MinPlayers                  int `envconfig:"MIN_PLAYERS" default:"4"`
	MaxPlayers                  int `envconfig:"MAX_PLAYERS" default:"15"`
	NightSeconds                int `envconfig:"NIGHT_DURATION_SECONDS" default:"120"`
	DaySeconds                  int `envconfig:"DAY_DURATION_SECONDS" default:"180"`
	VotingSeconds               int `envconfig:"VOTING_DURATION_SECONDS" default:"60"`
	MafiaRatio                  int `envconfig:"MAFIA_RATIO" default:"3"`
	DonThreshold                int `envconfig:"DON_MIN_PLAYERS" default:"6"`
	LawyerThreshold             int `envconfig:"LAWYER_MIN_PLAYERS" default:"8"`
	SecondDoctorThreshold       int `envconfig:"SECOND_DOCTOR_MIN_PLAYERS" default:"10"`
	SecondCommissionerThreshold int `envconfig:"SECOND_COMMISSIONER_MIN_PLAYERS" default:"12"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"` // "json" or "text"
}

// Load loads configuration from the environment, reading a .env file first
// if one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GameSettings converts the game configuration into domain settings
func (c *Config) GameSettings() domain.Settings {
	return domain.Settings{
		MinPlayers:                  c.Game.MinPlayers,
		MaxPlayers:                  c.Game.MaxPlayers,
		NightDuration:               time.Duration(c.Game.NightSeconds) * time.Second,
		DayDuration:                 time.Duration(c.Game.DaySeconds) * time.Second,
		VotingDuration:              time.Duration(c.Game.VotingSeconds) * time.Second,
		MafiaRatio:                  c.Game.MafiaRatio,
		DonThreshold:                c.Game.DonThreshold,
		LawyerThreshold:             c.Game.LawyerThreshold,
		SecondDoctorThreshold:       c.Game.SecondDoctorThreshold,
		SecondCommissionerThreshold: c.Game.SecondCommissionerThreshold,
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}
