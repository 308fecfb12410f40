package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"raycaster/internal/canvas"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration values
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	World       WorldConfig       `yaml:"world"`
	Textures    TextureConfig     `yaml:"textures"`
	Camera      CameraConfig      `yaml:"camera"`
	Raycast     RaycastConfig     `yaml:"raycast"`
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Movement    MovementConfig    `yaml:"movement"`
	Viewer      ViewerConfig      `yaml:"viewer"`
	Performance PerformanceConfig `yaml:"performance"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	ShowHUD      bool   `yaml:"show_hud"`
}

type WorldConfig struct {
	MapFile    string `yaml:"map_file"`    // empty: built-in level
	CellWidth  int    `yaml:"cell_width"`  // overview pixels per cell, 0 derives from the screen
	CellHeight int    `yaml:"cell_height"` // overview pixels per cell, 0 derives from the screen
}

type TextureConfig struct {
	AtlasFile       string `yaml:"atlas_file"`
	TextureCount    int    `yaml:"texture_count"`
	PlaceholderSize int    `yaml:"placeholder_size"` // texture size used when the atlas file is missing
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"` // degrees
}

type RaycastConfig struct {
	RayCount int     `yaml:"ray_count"`
	MaxRange float64 `yaml:"max_range"` // map cells
	StepSize float64 `yaml:"step_size"` // map cells
}

type GraphicsConfig struct {
	VerticalOffset int          `yaml:"vertical_offset"`
	ViewX          int          `yaml:"view_x"` // left edge of the 3D view, -1 for the right half
	MarkerSize     int          `yaml:"marker_size"`
	DrawRays       bool         `yaml:"draw_rays"`
	Colors         ColorsConfig `yaml:"colors"`
}

type ColorsConfig struct {
	Sky      [3]int `yaml:"sky"`
	Ground   [3]int `yaml:"ground"`
	MapEmpty [3]int `yaml:"map_empty"`
	MapWall  [3]int `yaml:"map_wall"`
	Marker   [3]int `yaml:"marker"`
	RayTrace [3]int `yaml:"ray_trace"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
}

type ViewerConfig struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	StartAngle float64 `yaml:"start_angle"` // degrees
}

// PerformanceConfig sets the limits behind the periodic performance alerts.
type PerformanceConfig struct {
	MinFPS      float64 `yaml:"min_fps"`
	MaxMemoryMB float64 `yaml:"max_memory_mb"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration. LoadConfig starts from these
// values, so a config file only needs the keys it changes.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1500,
			ScreenHeight: 900,
			WindowTitle:  "Ray Caster",
			ShowHUD:      true,
		},
		Textures: TextureConfig{
			AtlasFile:       "assets/walltext.png",
			TextureCount:    6,
			PlaceholderSize: 64,
		},
		Camera: CameraConfig{
			FieldOfView: 180 / 2.7,
		},
		Raycast: RaycastConfig{
			RayCount: 512,
			MaxRange: 20,
			StepSize: 0.05,
		},
		Graphics: GraphicsConfig{
			VerticalOffset: -150,
			ViewX:          -1,
			MarkerSize:     5,
			DrawRays:       true,
			Colors: ColorsConfig{
				Sky:      [3]int{255, 255, 255},
				Ground:   [3]int{255, 255, 255},
				MapEmpty: [3]int{255, 255, 255},
				MapWall:  [3]int{100, 100, 0},
				Marker:   [3]int{255, 0, 255},
				RayTrace: [3]int{15, 255, 0},
			},
		},
		Movement: MovementConfig{
			MoveSpeed:     0.05,
			RotationSpeed: 0.05,
		},
		Viewer: ViewerConfig{
			StartX:     3.5,
			StartY:     2.3,
			StartAngle: 180,
		},
		Performance: PerformanceConfig{
			MinFPS:      30,
			MaxMemoryMB: 500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a YAML file on top of Default().
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of Default().
func ParseConfig(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// LoadConfigOrDefault loads filename, falling back to Default() when the
// file does not exist. Parse errors are still returned.
func LoadConfigOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed
}

// GetCameraFOV returns the field of view in radians.
func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView * math.Pi / 180
}

// GetStartAngle returns the viewer's initial heading in radians.
func (c *Config) GetStartAngle() float64 {
	return c.Viewer.StartAngle * math.Pi / 180
}

// RenderConfig derives the core rendering parameters for a map of the given size.
func (c *Config) RenderConfig(mapWidth, mapHeight int) RenderConfig {
	w, h := c.GetScreenWidth(), c.GetScreenHeight()

	cellW, cellH := c.World.CellWidth, c.World.CellHeight
	if cellW <= 0 && mapWidth > 0 {
		// the overview takes the left half of the screen
		cellW = w / (mapWidth * 2)
	}
	if cellH <= 0 && mapHeight > 0 {
		cellH = h / mapHeight
	}
	viewX := c.Graphics.ViewX
	if viewX < 0 {
		viewX = w / 2
	}

	colors := c.Graphics.Colors
	return RenderConfig{
		CanvasWidth:    w,
		CanvasHeight:   h,
		MapWidth:       mapWidth,
		MapHeight:      mapHeight,
		CellWidth:      cellW,
		CellHeight:     cellH,
		FOV:            c.GetCameraFOV(),
		RayCount:       c.Raycast.RayCount,
		MaxRange:       c.Raycast.MaxRange,
		Step:           c.Raycast.StepSize,
		VerticalOffset: c.Graphics.VerticalOffset,
		ViewX:          viewX,
		MarkerSize:     c.Graphics.MarkerSize,
		DrawRays:       c.Graphics.DrawRays,
		SkyColor:       canvas.FromTriplet(colors.Sky),
		FloorColor:     canvas.FromTriplet(colors.Ground),
		MapEmptyColor:  canvas.FromTriplet(colors.MapEmpty),
		MapWallColor:   canvas.FromTriplet(colors.MapWall),
		MarkerColor:    canvas.FromTriplet(colors.Marker),
		RayColor:       canvas.FromTriplet(colors.RayTrace),
	}
}
