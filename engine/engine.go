package engine

import (
	"tag/experiments/metrics"
	"tag/game"
)

type Runner interface {
	// Run plays a game until a transversal is completed or the board is full.
	Run() (winner game.Piece, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
