package config

import (
	"fmt"
	"os"
)

const starterDeclaration = `# Build configuration declaration for the Sphinx documentation renderer.
# Values support ${VAR} environment expansion; a .env file is loaded first.

project: compi
copyright: "2025, cmelnu"
author: cmelnu

extensions: []

templates_path:
  - _templates
exclude_patterns: []

html_theme: sphinx_rtd_theme
html_theme_options:
  navigation_depth: 5
  collapse_navigation: false
  sticky_navigation: true
  includehidden: true
  titles_only: false
  style_nav_header_background: "#2980B9"

html_static_path:
  - _static
html_css_files:
  - custom.css

html_context:
  display_github: true
  github_user: cmelnu
  github_repo: compi
  github_version: main
  conf_py_path: /docs/source/

pygments_style: monokai
`

// Init creates a new declaration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(starterDeclaration), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}
