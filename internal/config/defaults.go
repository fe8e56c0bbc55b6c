package config

import (
	"fmt"
	"time"
)

// Documented defaults for every recognized key that has one. project and
// author have no default: the renderer needs them and Validate requires them.
const (
	DefaultTheme               = "sphinx_rtd_theme"
	DefaultPygmentsStyle       = "default"
	DefaultNavigationDepth     = 5
	DefaultNavHeaderBackground = "#2980B9"
)

var (
	defaultTemplatesPath = []string{"_templates"}
	defaultStaticPath    = []string{"_static"}
)

// applyDefaults fills omitted keys with their documented defaults. A key the
// user wrote explicitly (even as an empty sequence) is left alone, which is
// why presence is tracked at decode time.
func applyDefaults(cfg *BuildConfiguration) {
	if cfg.Copyright == "" && cfg.Author != "" {
		cfg.Copyright = fmt.Sprintf("%d, %s", time.Now().Year(), cfg.Author)
	}

	if !cfg.keyPresent("templates_path") {
		cfg.TemplatesPath = append([]string(nil), defaultTemplatesPath...)
	}
	if !cfg.keyPresent("html_static_path") {
		cfg.HTMLStaticPath = append([]string(nil), defaultStaticPath...)
	}

	if cfg.HTMLTheme == "" {
		cfg.HTMLTheme = DefaultTheme
	}
	if cfg.PygmentsStyle == "" {
		cfg.PygmentsStyle = DefaultPygmentsStyle
	}

	opts := &cfg.HTMLThemeOptions
	if !opts.navigationDepthSpecified && opts.NavigationDepth == 0 {
		opts.NavigationDepth = DefaultNavigationDepth
	}
	if !opts.stickySpecified && !opts.StickyNavigation {
		opts.StickyNavigation = true
	}
	if !opts.includeHiddenSpecified && !opts.IncludeHidden {
		opts.IncludeHidden = true
	}
	if opts.StyleNavHeaderBackground == "" {
		opts.StyleNavHeaderBackground = DefaultNavHeaderBackground
	}
}
