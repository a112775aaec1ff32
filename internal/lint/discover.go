package lint

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"refa/internal/apperr"
)

// Config file names probed at each directory level, in priority order.
var configNames = []string{
	".eslintrc.json",
	".eslintrc.yml",
	".eslintrc.yaml",
	".eslintrc.js",
}

// FindConfig walks up from dir looking for an ESLint configuration: a
// dedicated rc file, or an eslintConfig key inside package.json. A missing
// configuration is the ConfigurationMissing condition, distinct from a lint
// failure.
func FindConfig(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", apperr.Wrap(apperr.ConfigMissing, "cannot resolve search directory", err)
	}

	for {
		for _, name := range configNames {
			path := filepath.Join(current, name)
			if !fileExists(path) {
				continue
			}
			if isYAMLConfig(name) && !validYAML(path) {
				continue
			}
			return path, nil
		}

		if pkg := filepath.Join(current, "package.json"); hasESLintKey(pkg) {
			return pkg, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", apperr.New(apperr.ConfigMissing, "no ESLint configuration found")
		}
		current = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isYAMLConfig(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yml" || ext == ".yaml"
}

// validYAML checks that a YAML rc file parses to a mapping. A malformed file
// is skipped so discovery can continue upward.
func validYAML(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var doc map[string]any
	return yaml.Unmarshal(data, &doc) == nil
}

// hasESLintKey reports whether package.json declares an eslintConfig block.
func hasESLintKey(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(data, &pkg); err != nil {
		return false
	}
	_, ok := pkg["eslintConfig"]
	return ok
}
