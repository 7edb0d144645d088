package config

import (
	"errors"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-tournament/internal/util"
	"holdem-tournament/pkg/blinds"
	"holdem-tournament/pkg/strategy"
	"holdem-tournament/pkg/tournament"
)

// Config provides configuration for the tournament runner
type Config struct {
	loaded     bool
	Tournament Tournament         `yaml:"tournament"`
	Log        Log                `yaml:"log"`
	Profiles   []strategy.Profile `yaml:"profiles" ignored:"true"`
}

// Tournament configures the tournament
type Tournament struct {
	Players             int    `yaml:"players"`
	StartingChips       int    `yaml:"startingChips" envconfig:"starting_chips"`
	SmallBlind          int    `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind            int    `yaml:"bigBlind" envconfig:"big_blind"`
	HandsPerLevel       int    `yaml:"handsPerLevel" envconfig:"hands_per_level"`
	BlindMultiplier     int    `yaml:"blindMultiplier" envconfig:"blind_multiplier"`
	MaxActionsPerStreet int    `yaml:"maxActionsPerStreet" envconfig:"max_actions_per_street"`
	DecisionTimeoutMS   int    `yaml:"decisionTimeoutMs" envconfig:"decision_timeout_ms"`
	EventDelayMS        int    `yaml:"eventDelayMs" envconfig:"event_delay_ms"`
	Seed                int64  `yaml:"seed"`
	RandomNames         bool   `yaml:"randomNames" envconfig:"random_names"`
	Policy              string `yaml:"policy"`
}

// Log configures logging
type Log struct {
	Level string `yaml:"level"`
}

var config Config

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Tournament: Tournament{
			Players:             4,
			StartingChips:       1000,
			SmallBlind:          10,
			BigBlind:            20,
			HandsPerLevel:       10,
			BlindMultiplier:     blinds.DefaultMultiplier,
			MaxActionsPerStreet: 100,
			DecisionTimeoutMS:   5000,
			EventDelayMS:        0,
			Policy:              strategy.NameProfile,
		},
		Log: Log{
			Level: "info",
		},
		Profiles: strategy.DefaultProfiles(),
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values missing from the file keep their defaults, and the environment overrides both
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Settings converts the configuration to tournament settings
func (c Config) Settings() tournament.Settings {
	t := c.Tournament
	return tournament.Settings{
		Players:       t.Players,
		StartingChips: t.StartingChips,
		Blinds: blinds.Schedule{
			SmallBlind:    t.SmallBlind,
			BigBlind:      t.BigBlind,
			HandsPerLevel: t.HandsPerLevel,
			Multiplier:    t.BlindMultiplier,
		},
		MaxActionsPerStreet: t.MaxActionsPerStreet,
		DecisionTimeout:     time.Duration(t.DecisionTimeoutMS) * time.Millisecond,
		EventDelay:          time.Duration(t.EventDelayMS) * time.Millisecond,
		Seed:                t.Seed,
		RandomNames:         t.RandomNames,
		Policy:              t.Policy,
		Profiles:            c.Profiles,
	}
}
