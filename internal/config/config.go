// Package config provides YAML-based configuration for the adventure:
// game rules, controls, timing, the world to load, replay files and score
// storage.
package config

// AdventureConfig is the complete configuration.
type AdventureConfig struct {
	Rules    RulesConfig    `yaml:"rules"`
	Controls ControlsConfig `yaml:"controls"`
	Timing   TimingConfig   `yaml:"timing"`
	World    WorldConfig    `yaml:"world"`
	Replay   ReplayConfig   `yaml:"replay"`
	Storage  StorageConfig  `yaml:"storage"`
}

// RulesConfig defines the gameplay constants.
type RulesConfig struct {
	Lives             int          `yaml:"lives"`
	RespawnTicks      int          `yaml:"respawn_ticks"`       // dead time after a life is lost
	EntryRespawnTicks int          `yaml:"entry_respawn_ticks"` // timer set on game start and room restart
	BombFuse          int          `yaml:"bomb_fuse"`
	BlastRadius       int          `yaml:"blast_radius"`
	TorchRadius       int          `yaml:"torch_radius"`
	Scores            ScoresConfig `yaml:"scores"`
}

// ScoresConfig defines the points for each scoring action.
type ScoresConfig struct {
	UseKey       int `yaml:"use_key"`
	OpenDoor     int `yaml:"open_door"`
	SolveRiddle  int `yaml:"solve_riddle"`
	FinishFirst  int `yaml:"finish_first"`
	FinishSecond int `yaml:"finish_second"`
}

// PlayerKeys lists the control letters of one player.
type PlayerKeys struct {
	Right   string `yaml:"right"`
	Down    string `yaml:"down"`
	Left    string `yaml:"left"`
	Up      string `yaml:"up"`
	Stay    string `yaml:"stay"`
	Dispose string `yaml:"dispose"`
}

// ControlsConfig defines the keyboard layout.
type ControlsConfig struct {
	Player1 PlayerKeys `yaml:"player1"`
	Player2 PlayerKeys `yaml:"player2"`
	Restart string     `yaml:"restart"`
	Pause   string     `yaml:"pause"`
	Home    string     `yaml:"home"`
}

// TimingConfig defines tick intervals in milliseconds.
type TimingConfig struct {
	TickMs       int `yaml:"tick_ms"`        // interactive play
	ReplayTickMs int `yaml:"replay_tick_ms"` // visual replay
	SilentTickMs int `yaml:"silent_tick_ms"` // silent replay, 0 runs flat out
}

// WorldConfig selects the world: a registered id or a directory path.
type WorldConfig struct {
	ID string `yaml:"id"`
}

// ReplayConfig names the record/replay files.
type ReplayConfig struct {
	StepsFile   string `yaml:"steps_file"`
	ResultsFile string `yaml:"results_file"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	Path string `yaml:"path"` // "~" expands to the home directory
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Unknown values give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
