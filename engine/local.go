package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tag/experiments/metrics"
	"tag/game"
	"tag/gamemaster"
	"tag/player"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	Master  gamemaster.Engine
	Players map[game.Piece]player.Player
}

func LocalEngine(players []player.Player, size int) *Engine {
	if len(players) != 2 {
		panic("need exactly two players")
	}
	byPiece := map[game.Piece]player.Player{}
	for _, p := range players {
		byPiece[p.Piece()] = p
	}
	if byPiece[game.X] == nil || byPiece[game.O] == nil {
		panic("players must play X and O")
	}

	return &Engine{
		Master:  gamemaster.NewLocalEngine(size),
		Players: byPiece,
	}
}

// Run executes the game loop until the referee declares the game over.
func (e *Engine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	board, getUpdate := e.Master.Init()
	gameMetric := metrics.GameMetric{StartingPiece: game.X.String(), StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting", e.Players[game.X])

	for step := 1; ; step++ {
		if _, over := e.Master.Winner(); over {
			break
		}
		piece := e.Master.Turn()
		current := e.Players[piece]

		move, err := current.ChooseMove(board)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%v failed to choose a move: %w", current, err)
		}
		if err := e.Master.Play(piece, move); err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%v played %v: %w", current, move, err)
		}

		moveMetric := metrics.MoveMetric{Step: step, Piece: piece.String(), Move: move.String()}
		if reporter, ok := current.(player.Reporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		update, ok := getUpdate()
		if !ok {
			panic("referee accepted a move without publishing it")
		}
		board = update.Board
		log.Debug().Msgf("%v played %v\n%v", current, move, board)
	}

	winner, _ := e.Master.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("%v wins after %d moves", e.Players[winner], len(moveMetrics))
	} else {
		log.Info().Msgf("tie after %d moves", len(moveMetrics))
	}
	return winner, gameMetric, moveMetrics, nil
}
