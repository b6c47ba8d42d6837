// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	// Backend names the rendering backend: "opengl" or "vulkan".
	Backend string `yaml:"backend"`
	// ClearColor is the frame background, RGBA in [0,1].
	ClearColor [4]float32 `yaml:"clear_color"`
}

// WindowConfig holds windowing settings.
type WindowConfig struct {
	Title string `yaml:"title"`
	// Backend names the windowing backend: "glfw" or "sdl".
	Backend string `yaml:"backend"`
}

// CameraConfig holds camera and input settings.
type CameraConfig struct {
	FOV           float32 `yaml:"fov"`
	Sensitivity   float32 `yaml:"sensitivity"`
	CaptureCursor bool    `yaml:"capture_cursor"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Backend:    "opengl",
			ClearColor: [4]float32{0.1, 0.1, 0.12, 1.0},
		},
		Window: WindowConfig{
			Title:   "skr",
			Backend: "glfw",
		},
		Camera: CameraConfig{
			FOV:           45,
			Sensitivity:   0.1,
			CaptureCursor: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
