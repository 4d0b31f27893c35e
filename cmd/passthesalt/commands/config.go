package commands

import (
	"io"
	"os"
	"path/filepath"
)

// Config holds the I/O streams used by the command tree.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// CLIConfig is the merged result of flags, PASSTHESALT_* environment
// variables, the .env file and the optional config file.
type CLIConfig struct {
	LogLevel      string `mapstructure:"log"`
	Me            string `mapstructure:"me"`
	Them          string `mapstructure:"them"`
	OutputFile    string `mapstructure:"output-file"`
	OutputPrivate string `mapstructure:"output-private"`
}

// NewDefaultCLIConfig creates a CLIConfig with default values.
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		LogLevel: "warn",
	}
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "passthesalt")
	}
	return ""
}
