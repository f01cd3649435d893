package experiments

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"tag/engine"
	"tag/experiments/metrics"
	"tag/game"
	"tag/player"
	"tag/searcher"
	"tag/strategy"
)

const KindRandom = "random"

var ErrUnknownAgent = errors.New("unknown agent")

type Experiment struct {
	Name        string
	Size        int
	Games       int // Per match up
	Agents      []metrics.AgentConfig
	MatchUps    [][2]int // Agent IDs, the first plays X
	OutputDir   string
	StrategyDir string // Empty disables strategy persistence
}

// Run plays every match up and writes agent configs, game records and move
// records under OutputDir. It returns the directory written to.
func Run(x Experiment) (string, error) {
	agents := map[int]metrics.AgentConfig{}
	for _, config := range x.Agents {
		agents[config.ID] = config
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchUp := range x.MatchUps {
		config1, ok1 := agents[matchUp[0]]
		config2, ok2 := agents[matchUp[1]]
		if !ok1 || !ok2 {
			return "", fmt.Errorf("%w in match up %v", ErrUnknownAgent, matchUp)
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), config1, config2)

		for i := 0; i < x.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(x, config1, config2)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(x.MatchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(x.OutputDir, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame executes a single game, config1 playing X.
func runGame(x Experiment, config1, config2 metrics.AgentConfig) (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	px, err := createPlayer(config1, x.Size, game.X, x.StrategyDir)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	po, err := createPlayer(config2, x.Size, game.O, x.StrategyDir)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics, err := engine.LocalEngine([]player.Player{px, po}, x.Size).Run()
	if err != nil {
		return winner, gameMetric, moveMetrics, err
	}

	if x.StrategyDir != "" {
		for _, p := range []player.Player{px, po} {
			if ai, ok := p.(*player.AI); ok {
				if err := strategy.Persist(ai.Engine(), x.StrategyDir); err != nil {
					log.Warn().Err(err).Msg("failed to persist strategy")
				}
			}
		}
	}
	return winner, gameMetric, moveMetrics, nil
}

func createPlayer(config metrics.AgentConfig, size int, piece game.Piece, strategyDir string) (player.Player, error) {
	if config.Kind == KindRandom {
		return player.NewRandom(piece, config.Seed), nil
	}

	e, err := searcher.New(searcher.Kind(config.Kind), size, piece, engineOptions(config)...)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", config.ID, err)
	}
	if strategyDir != "" {
		if _, err := strategy.Restore(e, strategyDir); err != nil {
			log.Warn().Err(err).Msgf("ignoring strategy for agent %d", config.ID)
		}
	}
	return player.NewAI(piece, e), nil
}

func engineOptions(config metrics.AgentConfig) []searcher.Option {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.SerialDepth != nil {
		options = append(options, searcher.WithSerialDepth(*config.SerialDepth))
	}
	if config.Deterministic {
		options = append(options, searcher.WithDeterministic())
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}

	options = append(options, searcher.WithMetrics())
	return options
}
