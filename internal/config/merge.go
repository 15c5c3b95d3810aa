package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySchemaVersion = "schema_version"
	keyList          = "list"
	keyLogging       = "logging"
	keyDemo          = "demo"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. Sections present in the file are decoded over the target's current
// values, so fields the file omits keep their defaults. Unknown keys are
// ignored.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// An empty or comment-only file leaves overlay nil.
	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}
	return nil
}

// decodeSection decodes node into the field of target named by key.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keySchemaVersion:
		return node.Decode(&target.SchemaVersion)
	case keyList:
		return node.Decode(&target.List)
	case keyLogging:
		return node.Decode(&target.Logging)
	case keyDemo:
		return node.Decode(&target.Demo)
	default:
		return nil
	}
}
