// Package story defines the narrow contract a story module implements,
// and loads its YAML configuration.
package story

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"emberloom/internal/player"
)

// MoneyType enumerates the supported in-game currency flavors.
type MoneyType string

const (
	MoneyModern  MoneyType = "modern"
	MoneyFantasy MoneyType = "fantasy"
	MoneyNone    MoneyType = "none"
)

// TickMethod selects how the driver advances the server tick.
type TickMethod string

const (
	TickCommand TickMethod = "command"
	TickTimer   TickMethod = "timer"
)

// Config holds every story configuration field the driver consults.
type Config struct {
	Name               string        `yaml:"name"`
	Author             string        `yaml:"author"`
	AuthorAddress      string        `yaml:"author_address"`
	Version            string        `yaml:"version"`
	RequiresEngine     string        `yaml:"requires_engine"`
	SupportedModes     []string      `yaml:"supported_modes"`
	PlayerName         string        `yaml:"player_name"`
	PlayerGender       string        `yaml:"player_gender"`
	PlayerRace         string        `yaml:"player_race"`
	PlayerMoney        float64       `yaml:"player_money"`
	MoneyType          MoneyType     `yaml:"money_type"`
	ServerTickMethod   TickMethod    `yaml:"server_tick_method"`
	ServerTickTime     time.Duration `yaml:"server_tick_time"`
	GametimeToRealtime int           `yaml:"gametime_to_realtime"`
	MaxWaitHours       float64       `yaml:"max_wait_hours"`
	DisplayGametime    bool          `yaml:"display_gametime"`
	Epoch              time.Time     `yaml:"epoch"`
	StartLocationPlayer string       `yaml:"startlocation_player"`
	StartLocationWizard string       `yaml:"startlocation_wizard"`
	SavegamesEnabled   bool          `yaml:"savegames_enabled"`
	ShowExitsInLook    bool          `yaml:"show_exits_in_look"`
	LicenseFile        string        `yaml:"license_file"`
	MudHost            string        `yaml:"mud_host"`
	MudPort            int           `yaml:"mud_port"`
}

// Load reads and validates a story configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("story: read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("story: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated fields hold one of their allowed values.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("story: config is missing a name")
	}
	for _, mode := range c.SupportedModes {
		if mode != "if" && mode != "mud" {
			return fmt.Errorf("story: unsupported mode %q, want if or mud", mode)
		}
	}
	switch c.MoneyType {
	case MoneyModern, MoneyFantasy, MoneyNone, "":
	default:
		return fmt.Errorf("story: invalid money_type %q", c.MoneyType)
	}
	switch c.ServerTickMethod {
	case TickCommand, TickTimer, "":
	default:
		return fmt.Errorf("story: invalid server_tick_method %q", c.ServerTickMethod)
	}
	if c.GametimeToRealtime < 0 {
		return fmt.Errorf("story: gametime_to_realtime must be >= 0")
	}
	return nil
}

// Hooks is the narrow contract a story module implements, one method per
// story lifecycle point; the story's own game content (rooms, NPCs, items,
// zones) is opaque data the driver never constructs itself. Nothing in the
// driver calls these hooks.
type Hooks interface {
	Init(driver any) error
	InitPlayer(p *player.Player)
	Welcome(p *player.Player) (prompt string, ok bool)
	WelcomeSavegame(p *player.Player) (prompt string, ok bool)
	Goodbye(p *player.Player)
	Completion(p *player.Player)
}
