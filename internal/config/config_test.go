package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate keeps the search path away from the developer's own configs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		into any
		want any
	}{
		{"engine", defaultEngineYAML, &EngineConfig{}, DefaultEngineConfig()},
		{"pong", defaultPongYAML, &PongConfig{}, DefaultPongConfig()},
		{"asteroids", defaultAsteroidsYAML, &AsteroidsConfig{}, DefaultAsteroidsConfig()},
		{"numbers", defaultNumbersYAML, &NumbersConfig{}, DefaultNumbersConfig()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := yaml.Unmarshal(tc.data, tc.into); err != nil {
				t.Fatalf("embedded yaml: %v", err)
			}
			got := reflect.ValueOf(tc.into).Elem().Interface()
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("embedded %s.yaml = %+v, want %+v", tc.name, got, tc.want)
			}
			if err := got.(validator).Validate(); err != nil {
				t.Errorf("default %s config invalid: %v", tc.name, err)
			}
		})
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)
	cfg, err := LoadPong("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("LoadPong() = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := "ball:\n  speed: 8\ngameplay:\n  win_score: 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ball.Speed != 8 || cfg.Gameplay.WinScore != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Paddles.Height != 100 || cfg.Ball.Size != 10 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(bad, []byte("grid: [oops"), 0o644)
	os.WriteFile(invalid, []byte("grid:\n  size: 1\n"), 0o644)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"malformed", bad, "failed to parse"},
		{"invalid", invalid, "grid size"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadNumbers(tc.path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadNumbers(%s) error = %v, want %q", tc.name, err, tc.want)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	os.MkdirAll(filepath.Join(work, "configs"), 0o755)
	os.WriteFile(filepath.Join(work, "configs", "engine.yaml"), []byte("framerate: 30\n"), 0o644)

	cfg, err := LoadEngine("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Framerate != 30 {
		t.Errorf("local config ignored: framerate %v", cfg.Framerate)
	}

	userDir := filepath.Join(home, ".arcade", "configs")
	os.MkdirAll(userDir, 0o755)
	os.WriteFile(filepath.Join(userDir, "engine.yaml"), []byte("framerate: 60\n"), 0o644)

	cfg, _ = LoadEngine("")
	if cfg.Framerate != 60 {
		t.Errorf("user config should win over local: framerate %v", cfg.Framerate)
	}

	// An invalid user file is skipped.
	os.WriteFile(filepath.Join(userDir, "engine.yaml"), []byte("backend: vga\n"), 0o644)
	cfg, _ = LoadEngine("")
	if cfg.Framerate != 30 {
		t.Errorf("invalid user config not skipped: framerate %v", cfg.Framerate)
	}
}

func TestEngineBindings(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "engine.yaml")
	os.WriteFile(path, []byte("bindings:\n  FIRE: [z, x]\n"), 0o644)

	cfg, err := LoadEngine(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Bindings["FIRE"]; !reflect.DeepEqual(got, []string{"z", "x"}) {
		t.Errorf("bindings = %v", cfg.Bindings)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	}
	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.5},
		{50, 0.75},
		{100, 1},
		{500, 1},
	}
	d := NewDifficultyManager(cfg)
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.want {
			t.Errorf("Level(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
	if got := d.Speed(2, 100, 0); got != 4 {
		t.Errorf("Speed at max = %v, want 4", got)
	}

	cfg.Apply(DifficultyFixed)
	if fixed := NewDifficultyManager(cfg); fixed.IsEnabled() || fixed.Level(100, 0) != 0.5 {
		t.Error("fixed preset should freeze the level")
	}
	cfg.Apply(DifficultyHard)
	if !cfg.Enabled || cfg.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg)
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	if p, err := ParseDifficultyPreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficultyPreset(hard) = %v, %v", p, err)
	}
	if _, err := ParseDifficultyPreset("brutal"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
