package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BuildConfiguration is the declaration consumed by the external Sphinx
// renderer for a single build invocation. It is immutable after Load.
type BuildConfiguration struct {
	Project   string `yaml:"project"`
	Copyright string `yaml:"copyright,omitempty"`
	Author    string `yaml:"author"`

	Extensions      []string `yaml:"extensions"`
	TemplatesPath   []string `yaml:"templates_path"`
	ExcludePatterns []string `yaml:"exclude_patterns"`

	HTMLTheme        string       `yaml:"html_theme"`
	HTMLThemeOptions ThemeOptions `yaml:"html_theme_options"`
	HTMLStaticPath   []string     `yaml:"html_static_path"`
	HTMLCSSFiles     []string     `yaml:"html_css_files"`
	HTMLContext      HTMLContext  `yaml:"html_context"`

	PygmentsStyle string `yaml:"pygments_style"`

	// Top-level keys seen in the declaration file; used to distinguish
	// "explicitly empty" from "omitted" when applying defaults.
	present map[string]bool
	unknown []string
}

// ThemeOptions carries the display toggles of the selected HTML theme.
// The named fields are the ReadTheDocs theme options; anything else the
// declaration supplies is passed through verbatim in Extra.
type ThemeOptions struct {
	NavigationDepth          int
	CollapseNavigation       bool
	StickyNavigation         bool
	IncludeHidden            bool
	TitlesOnly               bool
	StyleNavHeaderBackground string
	Extra                    map[string]any

	navigationDepthSpecified bool
	stickySpecified          bool
	includeHiddenSpecified   bool
}

// HTMLContext holds the template context values the theme uses to render
// the "view source" link.
type HTMLContext struct {
	DisplayGitHub bool   `yaml:"display_github"`
	GitHubUser    string `yaml:"github_user"`
	GitHubRepo    string `yaml:"github_repo"`
	GitHubVersion string `yaml:"github_version"`
	ConfPyPath    string `yaml:"conf_py_path"`
}

// UnknownKeys reports top-level declaration keys the schema does not
// recognize. They are never fatal; the consuming tool ignores them too.
func (c *BuildConfiguration) UnknownKeys() []string {
	return append([]string(nil), c.unknown...)
}

func (c *BuildConfiguration) keyPresent(key string) bool {
	return c.present[key]
}

// UnmarshalYAML decodes theme options key by key so that presence of the
// boolean toggles is tracked (sticky_navigation and includehidden default to
// true only when omitted) and unrecognized options land in Extra.
func (o *ThemeOptions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("html_theme_options: expected a mapping, got %s", nodeKindName(node.Kind))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "navigation_depth":
			if err := val.Decode(&o.NavigationDepth); err != nil {
				return fmt.Errorf("html_theme_options.navigation_depth: %w", err)
			}
			o.navigationDepthSpecified = true
		case "collapse_navigation":
			if err := val.Decode(&o.CollapseNavigation); err != nil {
				return fmt.Errorf("html_theme_options.collapse_navigation: %w", err)
			}
		case "sticky_navigation":
			if err := val.Decode(&o.StickyNavigation); err != nil {
				return fmt.Errorf("html_theme_options.sticky_navigation: %w", err)
			}
			o.stickySpecified = true
		case "includehidden":
			if err := val.Decode(&o.IncludeHidden); err != nil {
				return fmt.Errorf("html_theme_options.includehidden: %w", err)
			}
			o.includeHiddenSpecified = true
		case "titles_only":
			if err := val.Decode(&o.TitlesOnly); err != nil {
				return fmt.Errorf("html_theme_options.titles_only: %w", err)
			}
		case "style_nav_header_background":
			if err := val.Decode(&o.StyleNavHeaderBackground); err != nil {
				return fmt.Errorf("html_theme_options.style_nav_header_background: %w", err)
			}
		default:
			var v any
			if err := val.Decode(&v); err != nil {
				return fmt.Errorf("html_theme_options.%s: %w", key, err)
			}
			switch v.(type) {
			case bool, string, int:
			default:
				return fmt.Errorf("html_theme_options.%s: unsupported value type %T (want bool, string or int)", key, v)
			}
			if o.Extra == nil {
				o.Extra = map[string]any{}
			}
			o.Extra[key] = v
		}
	}
	return nil
}

// MarshalYAML emits the effective option set, named fields first and
// passthrough options inline.
func (o ThemeOptions) MarshalYAML() (any, error) {
	return struct {
		NavigationDepth          int            `yaml:"navigation_depth"`
		CollapseNavigation       bool           `yaml:"collapse_navigation"`
		StickyNavigation         bool           `yaml:"sticky_navigation"`
		IncludeHidden            bool           `yaml:"includehidden"`
		TitlesOnly               bool           `yaml:"titles_only"`
		StyleNavHeaderBackground string         `yaml:"style_nav_header_background"`
		Extra                    map[string]any `yaml:",inline"`
	}{
		NavigationDepth:          o.NavigationDepth,
		CollapseNavigation:       o.CollapseNavigation,
		StickyNavigation:         o.StickyNavigation,
		IncludeHidden:            o.IncludeHidden,
		TitlesOnly:               o.TitlesOnly,
		StyleNavHeaderBackground: o.StyleNavHeaderBackground,
		Extra:                    o.Extra,
	}, nil
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
