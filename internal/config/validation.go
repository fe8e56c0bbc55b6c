package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks the declaration against the schema the external renderer
// expects. Hard failures return an error naming the offending key; values the
// renderer would merely fall back on (unknown theme or highlight style,
// unrecognized keys) only produce warnings, since hard rejection of those
// belongs to the consuming tool.
func Validate(cfg *BuildConfiguration) error {
	v := &declarationValidator{config: cfg}
	return v.validate()
}

type declarationValidator struct {
	config *BuildConfiguration
}

func (dv *declarationValidator) validate() error {
	if err := dv.validateProject(); err != nil {
		return err
	}
	if err := dv.validateExtensions(); err != nil {
		return err
	}
	if err := dv.validatePaths(); err != nil {
		return err
	}
	if err := dv.validateThemeOptions(); err != nil {
		return err
	}
	if err := dv.validateSourceHost(); err != nil {
		return err
	}
	dv.warnSoftIssues()
	return nil
}

func (dv *declarationValidator) validateProject() error {
	if strings.TrimSpace(dv.config.Project) == "" {
		return errors.New("project must be set: the renderer uses it as the site title")
	}
	return nil
}

func (dv *declarationValidator) validateExtensions() error {
	seen := make(map[string]bool, len(dv.config.Extensions))
	for _, ext := range dv.config.Extensions {
		if strings.TrimSpace(ext) == "" {
			return errors.New("extensions must not contain empty identifiers")
		}
		if seen[ext] {
			return fmt.Errorf("duplicate extension: %s", ext)
		}
		seen[ext] = true
	}
	return nil
}

func (dv *declarationValidator) validatePaths() error {
	for key, list := range map[string][]string{
		"templates_path":   dv.config.TemplatesPath,
		"exclude_patterns": dv.config.ExcludePatterns,
		"html_static_path": dv.config.HTMLStaticPath,
		"html_css_files":   dv.config.HTMLCSSFiles,
	} {
		for _, entry := range list {
			if strings.TrimSpace(entry) == "" {
				return fmt.Errorf("%s must not contain empty entries", key)
			}
		}
	}
	return nil
}

func (dv *declarationValidator) validateThemeOptions() error {
	opts := dv.config.HTMLThemeOptions
	if opts.NavigationDepth <= 0 {
		return fmt.Errorf("html_theme_options.navigation_depth must be a positive integer, got %d", opts.NavigationDepth)
	}
	if !validCSSColor(opts.StyleNavHeaderBackground) {
		return fmt.Errorf("html_theme_options.style_nav_header_background is not a usable color: %q", opts.StyleNavHeaderBackground)
	}
	return nil
}

// validateSourceHost enforces the consistency the theme needs to render the
// "view source" link: enabling it requires host coordinates.
func (dv *declarationValidator) validateSourceHost() error {
	hc := dv.config.HTMLContext
	if hc.DisplayGitHub {
		if hc.GitHubUser == "" || hc.GitHubRepo == "" || hc.GitHubVersion == "" {
			return errors.New("html_context: display_github requires github_user, github_repo and github_version")
		}
	}
	if hc.ConfPyPath != "" && !strings.HasPrefix(hc.ConfPyPath, "/") {
		return fmt.Errorf("html_context.conf_py_path must start with '/', got %q", hc.ConfPyPath)
	}
	return nil
}

func (dv *declarationValidator) warnSoftIssues() {
	if ThemeType(dv.config.HTMLTheme) == "" {
		slog.Warn("Theme is not one of the known identifiers; the renderer must have it installed",
			"html_theme", dv.config.HTMLTheme)
	}
	if !KnownPygmentsStyle(dv.config.PygmentsStyle) {
		slog.Warn("Unknown highlight style; the renderer will fall back to its default",
			"pygments_style", dv.config.PygmentsStyle)
	}
	for _, key := range dv.config.UnknownKeys() {
		slog.Warn("Unrecognized declaration key ignored", "key", key)
	}
}

// validCSSColor accepts #RGB / #RRGGBB hex values and plain keyword names.
func validCSSColor(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		for _, r := range hex {
			switch {
			case r >= '0' && r <= '9':
			case r >= 'a' && r <= 'f':
			case r >= 'A' && r <= 'F':
			default:
				return false
			}
		}
		return true
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
