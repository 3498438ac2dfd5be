package config

import (
	"os"
	"strconv"

	"github.com/SystemBuilders/noticeboard/internal/idgen"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of a notice board node.
type Config struct {
	Listen Listen `yaml:"listen"`
	Log    Log    `yaml:"log"`
	IDs    IDs    `yaml:"ids"`
}

// Listen holds the address the HTTP server binds to.
type Listen struct {
	IPAddr   string `yaml:"ip"`
	PortAddr string `yaml:"port"`
}

// IP returns the IP address to listen on.
func (l Listen) IP() string {
	return l.IPAddr
}

// Port returns the port to listen on.
func (l Listen) Port() string {
	return l.PortAddr
}

// Addr returns the host:port pair.
func (l Listen) Addr() string {
	return l.IPAddr + ":" + l.PortAddr
}

// Log configures the zerolog logger.
type Log struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// IDs configures record id generation.
type IDs struct {
	Generator   string `yaml:"generator"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen: Listen{
			IPAddr:   "127.0.0.1",
			PortAddr: "61111",
		},
		Log: Log{
			Level: zerolog.InfoLevel.String(),
		},
		IDs: IDs{
			Generator:   idgen.NameULID,
			MaxAttempts: 3,
		},
	}
}

// Load reads the YAML file at path on top of the defaults and validates
// the result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, xerrors.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, xerrors.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, xerrors.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the port range, the log level and the id generator name.
func (c Config) Validate() error {
	if err := checkValidPort(c.Listen.PortAddr); err != nil {
		return err
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	if _, err := idgen.New(c.IDs.Generator); err != nil {
		return err
	}
	if c.IDs.MaxAttempts < 1 {
		return xerrors.Errorf("max_attempts must be at least 1, got %d", c.IDs.MaxAttempts)
	}
	return nil
}

// ParseLevel returns the zerolog level named in the configuration.
func (l Log) ParseLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, xerrors.Errorf("log level: %w", err)
	}
	return lvl, nil
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return xerrors.Errorf("port %q: %w", port, err)
	}
	if portInt < 1 || portInt > 65535 {
		return xerrors.Errorf("port number %d outside of 1-65535", portInt)
	}
	return nil
}
