package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-adventure/internal/core"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultAdventureYAML, &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "rules:\n  lives: 7\n  bomb_fuse: 9\ntiming:\n  tick_ms: 80\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rules.Lives != 7 || cfg.Rules.BombFuse != 9 {
		t.Errorf("rules = %+v, expected lives 7 fuse 9", cfg.Rules)
	}
	if cfg.Timing.TickMs != 80 {
		t.Errorf("TickMs = %d, expected 80", cfg.Timing.TickMs)
	}
	// Fields missing from the file keep their defaults.
	if cfg.Rules.BlastRadius != 3 || cfg.Controls.Player1.Right != "D" {
		t.Errorf("defaults lost: blast %d, right %q", cfg.Rules.BlastRadius, cfg.Controls.Player1.Right)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("rules:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"broken yaml", bad, "failed to parse config"},
		{"invalid rules", invalid, "rules.lives"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, expected it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("Load() without files = %+v, expected defaults", cfg)
	}

	if err := os.MkdirAll("configs", 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", configFile), []byte("rules:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Rules.Lives != 4 {
		t.Errorf("Lives = %d from ./configs, expected 4", cfg.Rules.Lives)
	}

	userDir := filepath.Join(home, ".adventure", "configs")
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, configFile), []byte("rules:\n  lives: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Rules.Lives != 6 {
		t.Errorf("Lives = %d from the user directory, expected 6", cfg.Rules.Lives)
	}
}

func TestValidateControls(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AdventureConfig)
		wantErr string
	}{
		{"defaults", func(*AdventureConfig) {}, ""},
		{"shared key", func(c *AdventureConfig) { c.Controls.Player2.Right = "d" }, "share key"},
		{"empty key", func(c *AdventureConfig) { c.Controls.Restart = "" }, "controls.restart is empty"},
		{"negative respawn", func(c *AdventureConfig) { c.Rules.RespawnTicks = -1 }, "respawn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, expected %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantLives   int
		wantRespawn int
	}{
		{DifficultyEasy, 5, 10},
		{DifficultyNormal, 3, 20},
		{DifficultyHard, 1, 30},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Rules.Lives != tt.wantLives || cfg.Rules.RespawnTicks != tt.wantRespawn {
			t.Errorf("ApplyPreset(%s) = lives %d respawn %d, expected %d %d",
				tt.preset, cfg.Rules.Lives, cfg.Rules.RespawnTicks, tt.wantLives, tt.wantRespawn)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if got := ParsePreset("hard"); got != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, expected %q", got, DifficultyHard)
	}
	if got := ParsePreset("insane"); got != "" {
		t.Errorf("ParsePreset(insane) = %q, expected empty", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/.adventure/scores.db", filepath.Join(home, ".adventure/scores.db")},
		{"~", home},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"~user/x", "~user/x"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestControlsKeymap(t *testing.T) {
	km := DefaultConfig().Controls.Keymap()

	tests := []struct {
		key    rune
		player core.PlayerID
		dir    core.Direction
	}{
		{'D', core.Player1, core.DirRight},
		{'x', core.Player1, core.DirDown},
		{'E', core.Player1, core.DirDispose},
		{'j', core.Player2, core.DirLeft},
		{'K', core.Player2, core.DirStay},
		{'O', core.Player2, core.DirDispose},
	}
	for _, tt := range tests {
		in, ok := km.Intent(tt.key)
		if !ok || in.Player != tt.player || in.Dir != tt.dir {
			t.Errorf("Intent(%q) = %+v, %v, expected %v %v", tt.key, in, ok, tt.player, tt.dir)
		}
	}
	if in, _ := km.Intent('d'); in.Key != 'D' {
		t.Errorf("Intent('d').Key = %q, expected 'D'", in.Key)
	}
	if m := km.Meta('r'); m != core.MetaRestart {
		t.Errorf("Meta('r') = %v, expected Restart", m)
	}
	if _, ok := km.Intent('Z'); ok {
		t.Error("Intent('Z') should not be bound")
	}
}
