package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_DisplayGitHubRequiresCoordinates(t *testing.T) {
	_, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_context:
  display_github: true
  github_user: cmelnu
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "display_github")
}

func TestValidate_NavigationDepthMustBePositive(t *testing.T) {
	for _, depth := range []string{"0", "-3"} {
		_, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_theme_options:
  navigation_depth: `+depth+"\n"))
		require.Error(t, err, "depth %s", depth)
		require.Contains(t, err.Error(), "navigation_depth")
	}
}

func TestValidate_NavHeaderBackgroundColor(t *testing.T) {
	bad := []string{"2980B9", "#2980B", "#XYZXYZ", "not a color"}
	for _, color := range bad {
		_, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_theme_options:
  style_nav_header_background: "`+color+`"
`))
		require.Error(t, err, "color %q", color)
	}

	good := []string{"#2980B9", "#fff", "steelblue"}
	for _, color := range good {
		_, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_theme_options:
  style_nav_header_background: "`+color+`"
`))
		require.NoError(t, err, "color %q", color)
	}
}

func TestValidate_ConfPyPathMustBeAbsolute(t *testing.T) {
	_, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_context:
  conf_py_path: docs/source/
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "conf_py_path")
}

func TestValidate_ProjectRequired(t *testing.T) {
	_, err := Load(writeDecl(t, "author: cmelnu\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "project")
}

func TestValidate_DuplicateExtension(t *testing.T) {
	_, err := Load(writeDecl(t, `project: compi
author: cmelnu
extensions:
  - sphinx.ext.autodoc
  - sphinx.ext.autodoc
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate extension")
}

func TestValidate_EmptyListEntries(t *testing.T) {
	_, err := Load(writeDecl(t, `project: compi
author: cmelnu
html_css_files:
  - ""
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "html_css_files")
}
