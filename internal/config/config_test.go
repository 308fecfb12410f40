package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"raycaster/internal/canvas"
	"testing"
)

func TestDefaultRenderConfigMatchesBuiltInLayout(t *testing.T) {
	rc := DefaultRenderConfig()
	if err := rc.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if rc.RayCount != 512 || rc.MaxRange != 20 || rc.Step != 0.05 || rc.VerticalOffset != -150 {
		t.Errorf("unexpected ray parameters: %+v", rc)
	}
	if math.Abs(rc.FOV-math.Pi/2.7) > 1e-12 {
		t.Errorf("FOV = %v, want π/2.7", rc.FOV)
	}
	// 1500 / (16*2) and 900 / 16
	if rc.CellWidth != 46 || rc.CellHeight != 56 {
		t.Errorf("cell size = %dx%d, want 46x56", rc.CellWidth, rc.CellHeight)
	}
	if rc.ViewX != 750 {
		t.Errorf("ViewX = %d, want right half at 750", rc.ViewX)
	}
	if rc.MapWallColor != canvas.RGB(100, 100, 0) {
		t.Errorf("map wall colour = %#08x", uint32(rc.MapWallColor))
	}
}

func TestParseConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
display:
  screen_width: 800
raycast:
  ray_count: 200
graphics:
  view_x: 0
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.GetScreenWidth() != 800 || cfg.GetScreenHeight() != 900 {
		t.Errorf("screen = %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.Raycast.RayCount != 200 || cfg.Raycast.StepSize != 0.05 {
		t.Errorf("raycast = %+v", cfg.Raycast)
	}
	rc := cfg.RenderConfig(10, 10)
	if rc.ViewX != 0 {
		t.Errorf("explicit view_x 0 should be kept, got %d", rc.ViewX)
	}
	if rc.CellWidth != 40 {
		t.Errorf("CellWidth = %d, want 800/(10*2)", rc.CellWidth)
	}
}

func TestParseConfigRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("display: [unterminated")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  field_of_view: 90\nviewer:\n  start_angle: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if math.Abs(cfg.GetCameraFOV()-math.Pi/2) > 1e-12 {
		t.Errorf("FOV = %v rad", cfg.GetCameraFOV())
	}
	if math.Abs(cfg.GetStartAngle()-math.Pi/2) > 1e-12 {
		t.Errorf("start angle = %v rad", cfg.GetStartAngle())
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	cfg, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil || cfg == nil {
		t.Fatalf("missing file should give defaults, got %v", err)
	}
	if cfg.Textures.TextureCount != 6 {
		t.Errorf("texture count = %d", cfg.Textures.TextureCount)
	}
}

func TestMustLoadConfigPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RenderConfig)
	}{
		{"zero canvas", func(rc *RenderConfig) { rc.CanvasWidth = 0 }},
		{"empty map", func(rc *RenderConfig) { rc.MapHeight = 0 }},
		{"negative cell", func(rc *RenderConfig) { rc.CellWidth = -1 }},
		{"zero fov", func(rc *RenderConfig) { rc.FOV = 0 }},
		{"fov of pi", func(rc *RenderConfig) { rc.FOV = math.Pi }},
		{"nan fov", func(rc *RenderConfig) { rc.FOV = math.NaN() }},
		{"no rays", func(rc *RenderConfig) { rc.RayCount = 0 }},
		{"zero step", func(rc *RenderConfig) { rc.Step = 0 }},
		{"range below step", func(rc *RenderConfig) { rc.MaxRange = 0.01 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rc := DefaultRenderConfig()
			c.mutate(&rc)
			if err := rc.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRepositoryConfigFileIsValid(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "config.yaml"))
	if err != nil {
		t.Fatalf("load config.yaml: %v", err)
	}
	if err := cfg.RenderConfig(16, 16).Validate(); err != nil {
		t.Errorf("config.yaml produces an invalid render config: %v", err)
	}
	if fov := cfg.GetCameraFOV(); math.Abs(fov-math.Pi/2.7) > 1e-5 {
		t.Errorf("config.yaml field of view = %v rad, want about pi/2.7", fov)
	}
	if cfg.Performance.MinFPS != 30 || cfg.Performance.MaxMemoryMB != 500 {
		t.Errorf("performance = %+v", cfg.Performance)
	}
}
