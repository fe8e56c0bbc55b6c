package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// helper to write a declaration file into a temp dir.
func writeDecl(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docconf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const fullDecl = `project: compi
copyright: "2025, cmelnu"
author: cmelnu
extensions:
  - sphinx.ext.autodoc
templates_path:
  - _templates
exclude_patterns:
  - _build
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

func TestLoad_FullDeclaration(t *testing.T) {
	cfg, err := Load(writeDecl(t, fullDecl))
	require.NoError(t, err)

	require.Equal(t, "compi", cfg.Project)
	require.Equal(t, "2025, cmelnu", cfg.Copyright)
	require.Equal(t, "cmelnu", cfg.Author)
	require.Equal(t, []string{"sphinx.ext.autodoc"}, cfg.Extensions)
	require.Equal(t, []string{"_templates"}, cfg.TemplatesPath)
	require.Equal(t, []string{"_build"}, cfg.ExcludePatterns)
	require.Equal(t, "sphinx_rtd_theme", cfg.HTMLTheme)
	require.Equal(t, 5, cfg.HTMLThemeOptions.NavigationDepth)
	require.False(t, cfg.HTMLThemeOptions.CollapseNavigation)
	require.True(t, cfg.HTMLThemeOptions.StickyNavigation)
	require.True(t, cfg.HTMLThemeOptions.IncludeHidden)
	require.False(t, cfg.HTMLThemeOptions.TitlesOnly)
	require.Equal(t, "#2980B9", cfg.HTMLThemeOptions.StyleNavHeaderBackground)
	require.Equal(t, []string{"_static"}, cfg.HTMLStaticPath)
	require.Equal(t, []string{"custom.css"}, cfg.HTMLCSSFiles)
	require.True(t, cfg.HTMLContext.DisplayGitHub)
	require.Equal(t, "cmelnu", cfg.HTMLContext.GitHubUser)
	require.Equal(t, "compi", cfg.HTMLContext.GitHubRepo)
	require.Equal(t, "main", cfg.HTMLContext.GitHubVersion)
	require.Equal(t, "/docs/source/", cfg.HTMLContext.ConfPyPath)
	require.Equal(t, "monokai", cfg.PygmentsStyle)
	require.Empty(t, cfg.UnknownKeys())
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeDecl(t, "project: compi\nauthor: cmelnu\n"))
	require.NoError(t, err)

	require.Equal(t, []string{"_templates"}, cfg.TemplatesPath)
	require.Equal(t, []string{"_static"}, cfg.HTMLStaticPath)
	require.Equal(t, DefaultTheme, cfg.HTMLTheme)
	require.Equal(t, DefaultPygmentsStyle, cfg.PygmentsStyle)
	require.Equal(t, DefaultNavigationDepth, cfg.HTMLThemeOptions.NavigationDepth)
	require.True(t, cfg.HTMLThemeOptions.StickyNavigation)
	require.True(t, cfg.HTMLThemeOptions.IncludeHidden)
	require.False(t, cfg.HTMLThemeOptions.CollapseNavigation)
	require.False(t, cfg.HTMLThemeOptions.TitlesOnly)
	require.Equal(t, DefaultNavHeaderBackground, cfg.HTMLThemeOptions.StyleNavHeaderBackground)
	require.Contains(t, cfg.Copyright, "cmelnu")
	require.Empty(t, cfg.Extensions)
	require.Empty(t, cfg.ExcludePatterns)
}

func TestLoad_ExplicitEmptySequenceIsKept(t *testing.T) {
	cfg, err := Load(writeDecl(t, "project: compi\nauthor: cmelnu\ntemplates_path: []\n"))
	require.NoError(t, err)
	require.Empty(t, cfg.TemplatesPath)
}

func TestLoad_ExplicitFalseToggleIsKept(t *testing.T) {
	cfg, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_theme_options:
  sticky_navigation: false
  includehidden: false
`))
	require.NoError(t, err)
	require.False(t, cfg.HTMLThemeOptions.StickyNavigation)
	require.False(t, cfg.HTMLThemeOptions.IncludeHidden)
	// Unspecified toggles still take their defaults.
	require.Equal(t, DefaultNavigationDepth, cfg.HTMLThemeOptions.NavigationDepth)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("DOCCONF_AUTHOR", "cmelnu")
	cfg, err := Load(writeDecl(t, "project: compi\nauthor: ${DOCCONF_AUTHOR}\n"))
	require.NoError(t, err)
	require.Equal(t, "cmelnu", cfg.Author)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoad_ScalarWhereSequenceFails(t *testing.T) {
	_, err := Load(writeDecl(t, "project: compi\nauthor: cmelnu\nextensions: sphinx.ext.autodoc\n"))
	require.Error(t, err)
}

func TestLoad_UnknownKeysReported(t *testing.T) {
	cfg, err := Load(writeDecl(t, "project: compi\nauthor: cmelnu\nhtml_teme: oops\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"html_teme"}, cfg.UnknownKeys())
}

func TestLoad_ThemeOptionExtrasPassThrough(t *testing.T) {
	cfg, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_theme_options:
  navigation_depth: 3
  logo_only: true
  display_version: latest
  body_max_width: 1200
`))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.HTMLThemeOptions.NavigationDepth)
	require.Equal(t, map[string]any{
		"logo_only":       true,
		"display_version": "latest",
		"body_max_width":  1200,
	}, cfg.HTMLThemeOptions.Extra)
}

func TestLoad_ThemeOptionWithSequenceValueFails(t *testing.T) {
	_, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_theme_options:
  flyout_display: [a, b]
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "flyout_display")
}
