package config

// LogLevel selects the logger verbosity.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Config is the top-level ddodeck configuration, corresponding to .ddodeck.yml.
type Config struct {
	Title           string       `yaml:"title" koanf:"title"`
	OutputDir       string       `yaml:"output_dir" koanf:"output_dir"`
	Port            int          `yaml:"port" koanf:"port"`
	LogLevel        LogLevel     `yaml:"log_level" koanf:"log_level"`
	DataFile        string       `yaml:"data_file" koanf:"data_file"`
	Watch           bool         `yaml:"watch" koanf:"watch"`
	NarrowWidth     int          `yaml:"narrow_width" koanf:"narrow_width"`
	RevealRatio     float64      `yaml:"reveal_ratio" koanf:"reveal_ratio"`
	Timers          TimerConfig  `yaml:"timers" koanf:"timers"`
	Export          ExportConfig `yaml:"export" koanf:"export"`
	AllowAllOrigins bool         `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// TimerConfig holds the panel delays in milliseconds.
type TimerConfig struct {
	PomInfo     int `yaml:"pom_info" koanf:"pom_info"`
	PomBehavior int `yaml:"pom_behavior" koanf:"pom_behavior"`
	Reveal      int `yaml:"reveal" koanf:"reveal"`
}

// ExportConfig holds the diagram export defaults.
type ExportConfig struct {
	Formats []string `yaml:"formats" koanf:"formats"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}
