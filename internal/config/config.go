// Package config loads shadowfight settings through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// SHADOWFIGHT_PLAYER_LEVEL.
const EnvPrefix = "SHADOWFIGHT"

// Config is the fully resolved application configuration.
type Config struct {
	Player     PlayerConfig `mapstructure:"player"`
	Combat     CombatConfig `mapstructure:"combat"`
	DataDirs   []string     `mapstructure:"data_dirs"`
	JournalDir string       `mapstructure:"journal_dir"`
	Log        LogConfig    `mapstructure:"log"`
}

// PlayerConfig stands in for the persistent player profile.
// Health and Energy of -1 mean "start full".
type PlayerConfig struct {
	Level     int `mapstructure:"level"`
	MaxHealth int `mapstructure:"max_health"`
	MaxEnergy int `mapstructure:"max_energy"`
	Health    int `mapstructure:"health"`
	Energy    int `mapstructure:"energy"`
	LP        int `mapstructure:"lp"`
	SP        int `mapstructure:"sp"`
}

// CombatConfig tunes encounter resolution.
type CombatConfig struct {
	EndureCost     int    `mapstructure:"endure_cost"`
	VulnerableWhen string `mapstructure:"vulnerable_when"`
	Seed           int64  `mapstructure:"seed"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
}

// SetDefaults registers every key with its default so env overrides and
// Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("player.level", 1)
	v.SetDefault("player.max_health", 100)
	v.SetDefault("player.max_energy", 100)
	v.SetDefault("player.health", -1)
	v.SetDefault("player.energy", -1)
	v.SetDefault("player.lp", 10)
	v.SetDefault("player.sp", 5)
	v.SetDefault("combat.endure_cost", 0)
	v.SetDefault("combat.vulnerable_when", "")
	v.SetDefault("combat.seed", 0)
	v.SetDefault("data_dirs", []string{})
	v.SetDefault("journal_dir", "./journal")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", "")
}

// BindEnv enables SHADOWFIGHT_* overrides for every key.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load resolves defaults and unmarshals v into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Player.Health < 0 {
		cfg.Player.Health = cfg.Player.MaxHealth
	}
	if cfg.Player.Energy < 0 {
		cfg.Player.Energy = cfg.Player.MaxEnergy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every out-of-range value at once.
func (c *Config) Validate() error {
	var errs []error
	p := c.Player
	if p.Level < 1 {
		errs = append(errs, fmt.Errorf("player.level must be at least 1, got %d", p.Level))
	}
	if p.MaxHealth < 1 {
		errs = append(errs, fmt.Errorf("player.max_health must be at least 1, got %d", p.MaxHealth))
	}
	if p.MaxEnergy < 0 {
		errs = append(errs, fmt.Errorf("player.max_energy must not be negative, got %d", p.MaxEnergy))
	}
	if p.Health < 0 || p.Health > p.MaxHealth {
		errs = append(errs, fmt.Errorf("player.health must be within [0, %d], got %d", p.MaxHealth, p.Health))
	}
	if p.Energy < 0 || p.Energy > p.MaxEnergy {
		errs = append(errs, fmt.Errorf("player.energy must be within [0, %d], got %d", p.MaxEnergy, p.Energy))
	}
	if p.LP < 0 || p.SP < 0 {
		errs = append(errs, fmt.Errorf("player.lp and player.sp must not be negative"))
	}
	if c.Combat.EndureCost < 0 {
		errs = append(errs, fmt.Errorf("combat.endure_cost must not be negative, got %d", c.Combat.EndureCost))
	}
	if c.JournalDir == "" {
		errs = append(errs, errors.New("journal_dir must not be empty"))
	}
	return errors.Join(errs...)
}

// EnginePlayer converts the profile into the values an encounter starts from.
func (c *Config) EnginePlayer() engine.Player {
	return engine.Player{
		Level:     c.Player.Level,
		MaxHealth: c.Player.MaxHealth,
		MaxEnergy: c.Player.MaxEnergy,
		Health:    c.Player.Health,
		Energy:    c.Player.Energy,
		Resources: engine.Resources{LP: c.Player.LP, SP: c.Player.SP},
	}
}
