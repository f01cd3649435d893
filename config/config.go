package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tag/experiments/metrics"
	"tag/game"
	"tag/meta"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Name        string                `yaml:"name"`
	BoardSize   int                   `yaml:"board_size"`
	Games       int                   `yaml:"games"`
	OutputDir   string                `yaml:"output_dir"`
	StrategyDir string                `yaml:"strategy_dir"`
	LogLevel    string                `yaml:"log_level"`
	Agents      []metrics.AgentConfig `yaml:"agents"`
	MatchUps    [][2]int              `yaml:"match_ups"`
}

func Default() Config {
	return Config{
		Name:      "tag",
		BoardSize: meta.BOARD_SIZE,
		Games:     meta.GAMES,
		OutputDir: "experiments",
		LogLevel:  "info",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.BoardSize < 1 || c.BoardSize > game.MaxSize {
		return fmt.Errorf("%w: board size %d outside [1, %d]", ErrInvalid, c.BoardSize, game.MaxSize)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be positive", ErrInvalid)
	}
	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalid, agent.ID)
		}
		ids[agent.ID] = true
	}
	for _, matchUp := range c.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				return fmt.Errorf("%w: match up %v names unknown agent %d", ErrInvalid, matchUp, id)
			}
		}
	}
	return nil
}
