// Package config provides YAML-based platform configuration: tick rate,
// database location, and SSH server settings. The simulation constants are
// deliberately not configurable; they live in the sim package.
package config

import "time"

// Config is the full platform configuration.
type Config struct {
	TickRate int      `yaml:"tick_rate"` // Simulation ticks per second
	Database Database `yaml:"database"`
	SSH      SSH      `yaml:"ssh"`
}

// Database configures score persistence.
type Database struct {
	Path string `yaml:"path"` // SQLite file path; ~ expands to the home directory
}

// SSH configures the remote-play server.
type SSH struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // Auto-generated when empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (s SSH) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// Default returns the built-in platform configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Database: Database{
			Path: "~/.dragonfly/scores.db",
		},
		SSH: SSH{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
