package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	WSAddr            string        `mapstructure:"ws_addr" yaml:"ws_addr"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	MaxClients        int           `mapstructure:"max_clients" yaml:"max_clients"`
	MaxNameLen        int           `mapstructure:"max_name_len" yaml:"max_name_len"`
	DefaultRoom       string        `mapstructure:"default_room" yaml:"default_room"`
	OutboxSize        int           `mapstructure:"outbox_size" yaml:"outbox_size"`
	Color             bool          `mapstructure:"color" yaml:"color"`
	EchoCommand       bool          `mapstructure:"echo_command" yaml:"echo_command"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":5000",
		WSAddr:            ":8080",
		LogLevel:          "info",
		MaxClients:        100,
		MaxNameLen:        32,
		DefaultRoom:       "Common",
		OutboxSize:        32,
		Color:             true,
		EchoCommand:       true,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Sanitize clamps nonsensical values back to their defaults. An empty WSAddr
// is left alone: it disables the websocket listener.
func (c *Config) Sanitize() {
	def := Default()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.MaxClients <= 0 {
		c.MaxClients = def.MaxClients
	}
	if c.MaxNameLen <= 0 {
		c.MaxNameLen = def.MaxNameLen
	}
	if c.DefaultRoom == "" {
		c.DefaultRoom = def.DefaultRoom
	}
	if c.OutboxSize <= 0 {
		c.OutboxSize = def.OutboxSize
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = def.ReadHeaderTimeout
	}
}
