package config

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of the effective declaration. Ordered
// sequence fields (extensions, paths, stylesheets) hash in declared order
// since their order is meaningful to the renderer; exclude_patterns is a set
// of globs and is sorted first. Callers should only snapshot a configuration
// produced by Load, after defaults are in place.
func (c *BuildConfiguration) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) { h.Write([]byte(strings.Join(parts, "="))); h.Write([]byte{0}) }

	w("project", c.Project)
	w("copyright", c.Copyright)
	w("author", c.Author)
	w("extensions", strings.Join(c.Extensions, ","))
	w("templates_path", strings.Join(c.TemplatesPath, ","))
	if len(c.ExcludePatterns) > 0 {
		ep := append([]string{}, c.ExcludePatterns...)
		sort.Strings(ep)
		w("exclude_patterns", strings.Join(ep, ","))
	}

	w("html_theme", c.HTMLTheme)
	opts := c.HTMLThemeOptions
	w("html_theme_options.navigation_depth", strconv.Itoa(opts.NavigationDepth))
	w("html_theme_options.collapse_navigation", strconv.FormatBool(opts.CollapseNavigation))
	w("html_theme_options.sticky_navigation", strconv.FormatBool(opts.StickyNavigation))
	w("html_theme_options.includehidden", strconv.FormatBool(opts.IncludeHidden))
	w("html_theme_options.titles_only", strconv.FormatBool(opts.TitlesOnly))
	w("html_theme_options.style_nav_header_background", opts.StyleNavHeaderBackground)
	for _, key := range sortedExtraKeys(opts.Extra) {
		w("html_theme_options."+key, extraString(opts.Extra[key]))
	}

	w("html_static_path", strings.Join(c.HTMLStaticPath, ","))
	w("html_css_files", strings.Join(c.HTMLCSSFiles, ","))

	hc := c.HTMLContext
	w("html_context.display_github", strconv.FormatBool(hc.DisplayGitHub))
	w("html_context.github_user", hc.GitHubUser)
	w("html_context.github_repo", hc.GitHubRepo)
	w("html_context.github_version", hc.GitHubVersion)
	w("html_context.conf_py_path", hc.ConfPyPath)

	w("pygments_style", c.PygmentsStyle)

	return hex.EncodeToString(h.Sum(nil))
}

func sortedExtraKeys(extra map[string]any) []string {
	if len(extra) == 0 {
		return nil
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func extraString(v any) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case string:
		return t
	}
	return ""
}
