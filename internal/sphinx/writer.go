// Package sphinx emits the conf.py file the external Sphinx renderer reads.
// The output is deterministic: the same configuration always renders to the
// same bytes, so downstream tooling can diff or fingerprint it.
package sphinx

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cmelnu/docconf/internal/config"
)

const header = `# Build configuration for the Sphinx documentation renderer.
# Generated from a declaration file; edit the declaration, not this file.
`

// Render produces the conf.py content for the given configuration.
func Render(cfg *config.BuildConfiguration) []byte {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	// Project information
	writeAssign(&b, "project", pyStr(cfg.Project))
	writeAssign(&b, "copyright", pyStr(cfg.Copyright))
	writeAssign(&b, "author", pyStr(cfg.Author))
	b.WriteString("\n")

	// General configuration
	writeAssign(&b, "extensions", pyList(cfg.Extensions, false))
	writeAssign(&b, "templates_path", pyList(cfg.TemplatesPath, false))
	writeAssign(&b, "exclude_patterns", pyList(cfg.ExcludePatterns, false))
	b.WriteString("\n")

	// HTML output
	writeAssign(&b, "html_theme", pyStr(cfg.HTMLTheme))
	b.WriteString("html_theme_options = {\n")
	writeEntry(&b, "navigation_depth", fmt.Sprintf("%d", cfg.HTMLThemeOptions.NavigationDepth))
	writeEntry(&b, "collapse_navigation", pyBool(cfg.HTMLThemeOptions.CollapseNavigation))
	writeEntry(&b, "sticky_navigation", pyBool(cfg.HTMLThemeOptions.StickyNavigation))
	writeEntry(&b, "includehidden", pyBool(cfg.HTMLThemeOptions.IncludeHidden))
	writeEntry(&b, "titles_only", pyBool(cfg.HTMLThemeOptions.TitlesOnly))
	writeEntry(&b, "style_nav_header_background", pyStr(cfg.HTMLThemeOptions.StyleNavHeaderBackground))
	for _, key := range sortedKeys(cfg.HTMLThemeOptions.Extra) {
		writeEntry(&b, key, pyValue(cfg.HTMLThemeOptions.Extra[key]))
	}
	b.WriteString("}\n\n")

	writeAssign(&b, "html_static_path", pyList(cfg.HTMLStaticPath, false))
	writeAssign(&b, "html_css_files", pyList(cfg.HTMLCSSFiles, true))
	b.WriteString("\n")

	if hc := cfg.HTMLContext; hc != (config.HTMLContext{}) {
		b.WriteString("html_context = {\n")
		writeEntry(&b, "display_github", pyBool(hc.DisplayGitHub))
		writeEntry(&b, "github_user", pyStr(hc.GitHubUser))
		writeEntry(&b, "github_repo", pyStr(hc.GitHubRepo))
		writeEntry(&b, "github_version", pyStr(hc.GitHubVersion))
		writeEntry(&b, "conf_py_path", pyStr(hc.ConfPyPath))
		b.WriteString("}\n\n")
	}

	writeAssign(&b, "pygments_style", pyStr(cfg.PygmentsStyle))

	return []byte(b.String())
}

// Write renders conf.py and promotes it into place atomically, so a reader
// (or a failed later render) never observes a half-written file.
func Write(cfg *config.BuildConfiguration, path string) error {
	data := Render(cfg)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".staging-*")
	if err != nil {
		return fmt.Errorf("failed to create staging file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write staging file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close staging file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set staging file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to promote %s: %w", path, err)
	}
	return nil
}

func writeAssign(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "%s = %s\n", name, value)
}

func writeEntry(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "    %s: %s,\n", pyStr(key), value)
}

// pyStr renders a single-quoted Python string literal.
func pyStr(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// pyList renders a Python list literal; multiline spreads one element per
// line, matching the conventional layout for stylesheet lists.
func pyList(items []string, multiline bool) string {
	if len(items) == 0 {
		return "[]"
	}
	if !multiline {
		quoted := make([]string, len(items))
		for i, item := range items {
			quoted[i] = pyStr(item)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, item := range items {
		fmt.Fprintf(&b, "    %s,\n", pyStr(item))
	}
	b.WriteString("]")
	return b.String()
}

func pyValue(v any) string {
	switch t := v.(type) {
	case bool:
		return pyBool(t)
	case int:
		return fmt.Sprintf("%d", t)
	case string:
		return pyStr(t)
	}
	return pyStr(fmt.Sprintf("%v", v))
}

func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
