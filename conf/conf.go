package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cBlueShell/cIBMWebSphereAppServer/shared/running"
	fsutils "github.com/cBlueShell/cIBMWebSphereAppServer/utils/fs"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

const (
	FormatLines   = "lines"
	FormatBracket = "bracket"
	FormatJSON    = "json"
	FormatYAML    = "yaml"

	DefaultFormat       = FormatLines
	DefaultMaxInputSize = "16MB"
)

var Formats = []string{FormatLines, FormatBracket, FormatJSON, FormatYAML}

type Global struct {
	HomePath string `yaml:"home_path,omitempty"`
}

type Logging struct {
	Console    bool `yaml:"console,omitempty"` // log to stderr instead of a file
	MaxSize    int  `yaml:"max_size,omitempty"` // megabytes
	MaxBackups int  `yaml:"max_backups,omitempty"`
	MaxAge     int  `yaml:"max_age,omitempty"` // days
}

type Client struct {
	DefaultFormat string `yaml:"default_format,omitempty"`
	MaxInputSize  string `yaml:"max_input_size,omitempty"`

	// Parsed from MaxInputSize.
	MaxInputBytes uint64 `yaml:"-"`
}

type Conf struct {
	Global  Global  `yaml:"global,omitempty"`
	Logging Logging `yaml:"logging,omitempty"`
	Client  Client  `yaml:"client,omitempty"`
}

var conf *Conf

var confFile string

func Get() *Conf {
	return conf
}

// File is the config file that was loaded, or would be created.
func File() string {
	return confFile
}

func IsFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func Load() error {
	homePath := filepath.Join(running.UserHomeDir(), ".wslist")

	search := []string{
		running.ConfigFile(),
		filepath.Join(running.ExecutablePath(), "config.local.yaml"),
		filepath.Join(homePath, "config.yaml"),
		filepath.Join(running.ExecutablePath(), "config.yaml"),
		filepath.Join(running.ExecutablePath(), "config.example.yaml"),
	}

	confFile = ""
	for _, path := range search {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			confFile = path
			break
		}
	}

	if confFile == "" {
		confFile = filepath.Join(homePath, "config.yaml")
	}

	c := &Conf{
		Global: Global{
			HomePath: homePath,
		},
		Logging: Logging{
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Client: Client{
			DefaultFormat: DefaultFormat,
			MaxInputSize:  DefaultMaxInputSize,
		},
	}

	confBytes := fsutils.ReadFileWithDefault(confFile, []byte(``))
	if err := yaml.Unmarshal(confBytes, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", confFile, err)
	}

	if c.Global.HomePath == "" {
		c.Global.HomePath = homePath
	}

	if err := os.MkdirAll(c.Global.HomePath, 0755); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}

	if !IsFormat(c.Client.DefaultFormat) {
		c.Client.DefaultFormat = DefaultFormat
	}

	size, err := humanize.ParseBytes(c.Client.MaxInputSize)
	if err != nil || size == 0 {
		c.Client.MaxInputSize = DefaultMaxInputSize
		size, _ = humanize.ParseBytes(DefaultMaxInputSize)
	}
	c.Client.MaxInputBytes = size

	if c.Logging.MaxSize <= 0 {
		c.Logging.MaxSize = 50
	}

	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 3
	}

	if c.Logging.MaxAge < 0 {
		c.Logging.MaxAge = 28
	}

	conf = c
	return nil
}

// SetForTest installs c as the loaded config and returns a restore func.
func SetForTest(c *Conf) func() {
	old := conf
	conf = c
	return func() {
		conf = old
	}
}
