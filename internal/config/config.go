package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// recognizedKeys is the schema surface the external renderer reads. Anything
// else at the top level is reported through UnknownKeys.
var recognizedKeys = map[string]bool{
	"project":            true,
	"copyright":          true,
	"author":             true,
	"extensions":         true,
	"templates_path":     true,
	"exclude_patterns":   true,
	"html_theme":         true,
	"html_theme_options": true,
	"html_static_path":   true,
	"html_css_files":     true,
	"html_context":       true,
	"pygments_style":     true,
}

// Load reads the declaration file, expands environment variable references,
// applies the documented defaults and validates the result. The returned
// configuration is not mutated afterwards; loading the same file twice yields
// identical values and an identical Snapshot.
func Load(configPath string) (*BuildConfiguration, error) {
	// Load .env file if it exists; absence is not an error.
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content before decoding.
	expanded := os.ExpandEnv(string(data))

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(expanded), &root); err != nil {
		return nil, fmt.Errorf("failed to parse declaration: %w", err)
	}

	var cfg BuildConfiguration
	if root.Kind != 0 {
		if err := root.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal declaration: %w", err)
		}
		cfg.present, cfg.unknown = topLevelKeys(&root)
	} else {
		cfg.present = map[string]bool{}
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// topLevelKeys walks the document's root mapping and splits its keys into
// the present set and the unrecognized remainder (declaration order kept).
func topLevelKeys(root *yaml.Node) (map[string]bool, []string) {
	present := map[string]bool{}
	var unknown []string

	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return present, unknown
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		present[key] = true
		if !recognizedKeys[key] {
			unknown = append(unknown, key)
		}
	}
	return present, unknown
}
