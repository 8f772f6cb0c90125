package config

import (
	_ "embed"
)

//go:embed defaults/adventure.yaml
var defaultAdventureYAML []byte

// DefaultConfig returns the hard-coded configuration. It matches
// defaults/adventure.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() AdventureConfig {
	return AdventureConfig{
		Rules: DefaultRules(),
		Controls: ControlsConfig{
			Player1: PlayerKeys{Right: "D", Down: "X", Left: "A", Up: "W", Stay: "S", Dispose: "E"},
			Player2: PlayerKeys{Right: "L", Down: "M", Left: "J", Up: "I", Stay: "K", Dispose: "O"},
			Restart: "R",
			Pause:   "esc",
			Home:    "H",
		},
		Timing: TimingConfig{
			TickMs:       150,
			ReplayTickMs: 10,
			SilentTickMs: 0,
		},
		World: WorldConfig{ID: "classic"},
		Replay: ReplayConfig{
			StepsFile:   "adv-world.steps",
			ResultsFile: "adv-world.results",
		},
		Storage: StorageConfig{Path: "~/.adventure/scores.db"},
	}
}

// DefaultRules returns the standard game rules.
func DefaultRules() RulesConfig {
	return RulesConfig{
		Lives:             3,
		RespawnTicks:      20,
		EntryRespawnTicks: 5,
		BombFuse:          5,
		BlastRadius:       3,
		TorchRadius:       3,
		Scores: ScoresConfig{
			UseKey:       10,
			OpenDoor:     20,
			SolveRiddle:  10,
			FinishFirst:  100,
			FinishSecond: 50,
		},
	}
}
