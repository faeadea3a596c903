package koseg

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigEnv names the environment variable holding the path of the TOML file
// used by Default. When it is unset the defaults apply.
const ConfigEnv = "KOSEG_CONFIG"

// Mode selects how the engine treats compound words.
type Mode string

const (
	// ModeNormal returns the lowest-cost path through the lattice.
	ModeNormal Mode = "normal"
	// ModeSearch splits compounds into their parts using the engine's length
	// penalty. It is the default.
	ModeSearch Mode = "search"
	// ModeExtended behaves like ModeSearch and also splits unknown words into
	// single characters.
	ModeExtended Mode = "extended"
)

// DictionaryKo is the embedded mecab-ko-dic dictionary.
const DictionaryKo = "ko"

// Config fixes the engine setup for the lifetime of a Segmenter.
type Config struct {
	// Dictionary names an embedded dictionary. Only DictionaryKo is known.
	Dictionary string `toml:"dictionary"`

	// DictPath loads a kagome dictionary file instead of the embedded one.
	DictPath string `toml:"dict_path"`

	// Mode is the decomposition mode; empty means ModeSearch.
	Mode Mode `toml:"mode"`

	// KeepSpace keeps whitespace-only tokens in the output.
	KeepSpace bool `toml:"keep_space"`

	// Concurrent lets calls into the engine run in parallel. Leave it off
	// unless the engine build is known to be safe for concurrent analysis.
	Concurrent bool `toml:"concurrent"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Dictionary: DictionaryKo,
		Mode:       ModeSearch,
	}
}

// LoadConfig reads and normalizes a TOML configuration file. Keys missing from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses TOML bytes into a normalized Config.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	return cfg.normalize()
}

// ConfigFromEnv loads the file named by KOSEG_CONFIG, or returns the defaults
// when the variable is unset or empty.
func ConfigFromEnv() (Config, error) {
	path := strings.TrimSpace(os.Getenv(ConfigEnv))
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

func (c Config) normalize() (Config, error) {
	out := c
	out.Dictionary = strings.ToLower(strings.TrimSpace(c.Dictionary))
	out.DictPath = strings.TrimSpace(c.DictPath)
	out.Mode = Mode(strings.ToLower(strings.TrimSpace(string(c.Mode))))

	if out.Dictionary == "" {
		out.Dictionary = DictionaryKo
	}
	if out.Dictionary != DictionaryKo && out.DictPath == "" {
		return out, fmt.Errorf("unknown dictionary %q", c.Dictionary)
	}

	switch out.Mode {
	case "", "decompose":
		out.Mode = ModeSearch
	case ModeNormal, ModeSearch, ModeExtended:
	default:
		return out, fmt.Errorf("unknown mode %q", c.Mode)
	}
	return out, nil
}
