package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tag/config"
	"tag/experiments"
	"tag/meta"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	path := flag.String("config", "", "path to a YAML experiment config")
	size := flag.Int("size", 0, "board size, overrides the config")
	games := flag.Int("games", 0, "games per match up, overrides the config")
	strategies := flag.String("strategies", "", "directory to load and save engine strategies")
	level := flag.String("log-level", "", "log level, overrides the config")
	flag.Parse()

	c := config.Default()
	if *path != "" {
		var err error
		c, err = config.Load(*path)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *size > 0 {
		c.BoardSize = *size
	}
	if *games > 0 {
		c.Games = *games
	}
	if *strategies != "" {
		c.StrategyDir = *strategies
	}
	if *level != "" {
		c.LogLevel = *level
	}
	if len(c.Agents) == 0 {
		c.Agents = experiments.ScalingAgents(0, 1, meta.GO_ROUTINES)
		c.MatchUps = experiments.SelfPlay(c.Agents)
	}
	if err := c.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	logLevel, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	_, err = experiments.Run(experiments.Experiment{
		Name:        c.Name,
		Size:        c.BoardSize,
		Games:       c.Games,
		Agents:      c.Agents,
		MatchUps:    c.MatchUps,
		OutputDir:   c.OutputDir,
		StrategyDir: c.StrategyDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}
