package style

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"
)

// MaxOverrideSize caps override files to prevent memory exhaustion (1MB).
var MaxOverrideSize = 1 << 20

// Sentinel errors for override loading.
var (
	ErrOverridesNotFound = errors.New("style overrides file not found")
	ErrOverridesTooLarge = errors.New("style overrides file exceeds maximum size")
	ErrOverridesParse    = errors.New("failed to parse style overrides")
)

// defaultOverrideName is looked up in the home directory, then the working
// directory, when no explicit path is given.
const defaultOverrideName = "mdpressrc.toml"

// Load reads a style override file into the primitive map consumed by
// Resolve. The format is chosen by extension: .yaml/.yml decode as YAML,
// anything else as TOML. Decoding is the only thing that can fail here;
// unknown keys and wrong-typed values survive into the map and are ignored
// by Resolve.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrOverridesNotFound, path)
		}
		return nil, fmt.Errorf("reading style overrides: %w", err)
	}
	if len(data) > MaxOverrideSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrOverridesTooLarge, len(data), MaxOverrideSize)
	}

	var overrides map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &overrides)
	default:
		err = toml.Unmarshal(data, &overrides)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOverridesParse, err)
	}
	return overrides, nil
}

// LoadDefault looks for the conventional override file in the home
// directory and then the working directory. A missing file is not an
// error: the resolver simply keeps the built-in defaults.
func LoadDefault() (map[string]any, error) {
	candidates := []string{defaultOverrideName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = []string{filepath.Join(home, defaultOverrideName), defaultOverrideName}
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return Load(path)
	}
	return nil, nil
}
