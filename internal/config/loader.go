package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

const configFile = "adventure.yaml"

// Load loads the adventure configuration. Values missing from a file keep
// their defaults.
// Search order: customPath -> ~/.adventure/configs/adventure.yaml -> ./configs/adventure.yaml -> embedded default
func Load(customPath string) (AdventureConfig, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAdventureYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c AdventureConfig) Validate() error {
	r := c.Rules
	switch {
	case r.Lives < 1:
		return fmt.Errorf("config: rules.lives must be at least 1, got %d", r.Lives)
	case r.BombFuse < 1:
		return fmt.Errorf("config: rules.bomb_fuse must be at least 1, got %d", r.BombFuse)
	case r.BlastRadius < 1:
		return fmt.Errorf("config: rules.blast_radius must be at least 1, got %d", r.BlastRadius)
	case r.TorchRadius < 1:
		return fmt.Errorf("config: rules.torch_radius must be at least 1, got %d", r.TorchRadius)
	case r.RespawnTicks < 0 || r.EntryRespawnTicks < 0:
		return fmt.Errorf("config: respawn ticks must not be negative")
	}
	seen := map[string]string{}
	for name, key := range c.Controls.All() {
		k := strings.ToUpper(key)
		if k == "" {
			return fmt.Errorf("config: controls.%s is empty", name)
		}
		if other, ok := seen[k]; ok {
			return fmt.Errorf("config: controls.%s and controls.%s share key %q", other, name, key)
		}
		seen[k] = name
	}
	return nil
}

// All returns every binding keyed by its YAML path.
func (c ControlsConfig) All() map[string]string {
	return map[string]string{
		"player1.right":   c.Player1.Right,
		"player1.down":    c.Player1.Down,
		"player1.left":    c.Player1.Left,
		"player1.up":      c.Player1.Up,
		"player1.stay":    c.Player1.Stay,
		"player1.dispose": c.Player1.Dispose,
		"player2.right":   c.Player2.Right,
		"player2.down":    c.Player2.Down,
		"player2.left":    c.Player2.Left,
		"player2.up":      c.Player2.Up,
		"player2.stay":    c.Player2.Stay,
		"player2.dispose": c.Player2.Dispose,
		"restart":         c.Restart,
		"pause":           c.Pause,
		"home":            c.Home,
	}
}

// Keymap builds the key decoder for the control letters. Bindings longer
// than one character, such as "esc", are left to the terminal layer.
func (c ControlsConfig) Keymap() *core.Keymap {
	km := core.NewKeymap()
	for _, pk := range []struct {
		id   core.PlayerID
		keys PlayerKeys
	}{{core.Player1, c.Player1}, {core.Player2, c.Player2}} {
		for d, key := range map[core.Direction]string{
			core.DirRight:   pk.keys.Right,
			core.DirDown:    pk.keys.Down,
			core.DirLeft:    pk.keys.Left,
			core.DirUp:      pk.keys.Up,
			core.DirStay:    pk.keys.Stay,
			core.DirDispose: pk.keys.Dispose,
		} {
			if r, ok := letter(key); ok {
				km.Bind(r, pk.id, d)
			}
		}
	}
	if r, ok := letter(c.Restart); ok {
		km.BindMeta(r, core.MetaRestart)
	}
	if r, ok := letter(c.Home); ok {
		km.BindMeta(r, core.MetaHome)
	}
	return km
}

func letter(key string) (rune, bool) {
	r := []rune(key)
	if len(r) != 1 {
		return 0, false
	}
	return r[0], true
}

// ApplyPreset adjusts lives and respawn delay for a difficulty preset.
func ApplyPreset(cfg *AdventureConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.Rules.RespawnTicks = 10
	case DifficultyHard:
		cfg.Rules.Lives = 1
		cfg.Rules.RespawnTicks = 30
	}
}

// Dir returns ~/.adventure, or "" if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".adventure")
}

// ExpandHome replaces a leading "~" with the home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
