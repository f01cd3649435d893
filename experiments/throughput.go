package experiments

import (
	"tag/experiments/metrics"
	"tag/searcher"
)

// ScalingAgents builds parallel agents that differ only in goroutine count.
func ScalingAgents(depth int, goroutines ...int) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, 0, len(goroutines))
	for i, g := range goroutines {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Kind:       string(searcher.KindParallel),
			Depth:      depth,
			Goroutines: g,
		})
	}
	return configs
}

// SelfPlay pairs every agent with itself for the same playing strength and
// similar game length.
func SelfPlay(configs []metrics.AgentConfig) [][2]int {
	matchUps := make([][2]int, 0, len(configs))
	for _, config := range configs {
		matchUps = append(matchUps, [2]int{config.ID, config.ID})
	}
	return matchUps
}
