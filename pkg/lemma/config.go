package lemma

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ProjectConfig represents a lemma.toml project configuration file.
type ProjectConfig struct {
	// Eval holds limits for the symbolic evaluator.
	Eval EvalConfig `toml:"eval"`
}

// EvalConfig holds limits for the symbolic evaluator.
type EvalConfig struct {
	// MaxDepth bounds evaluation and substitution recursion depth.
	// Exceeding it surfaces as a recursion-limit error instead of a stack
	// overflow. 0 means unlimited: recursion is then bounded only by the
	// depth of the input term, which callers feeding untrusted trees
	// should keep in mind.
	MaxDepth int `toml:"max-depth"`
}

// LoadProjectConfig loads a lemma.toml file from the given path.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	var config ProjectConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &config, nil
}

// FindProjectConfig searches for a lemma.toml file starting from dir and
// walking up to parent directories. Returns the path to lemma.toml and the
// parsed config, or ("", nil, nil) if not found.
func FindProjectConfig(dir string) (string, *ProjectConfig, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}

	for {
		path := filepath.Join(dir, "lemma.toml")
		if _, err := os.Stat(path); err == nil {
			config, err := LoadProjectConfig(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}
