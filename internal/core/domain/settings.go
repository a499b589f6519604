package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ConsoleSettings is the shared configuration block handed to every console
type ConsoleSettings struct {
	Activated           bool              `yaml:"activated"`
	WiderCompletionMenu bool              `yaml:"wider_completion_menu"`
	MultiLine           bool              `yaml:"multi_line"`
	TableFormat         string            `yaml:"table_format"`
	SyntaxStyle         string            `yaml:"syntax_style"`
	EnablePager         bool              `yaml:"enable_pager"`
	Pager               string            `yaml:"pager"`
	PromptContinuation  string            `yaml:"prompt_continuation"`
	Colors              map[string]string `yaml:"colors"`
	Executables         map[string]string `yaml:"executables"` // Optional per-tool executable paths
}

// NewConsoleSettings creates console settings with defaults
func NewConsoleSettings() *ConsoleSettings {
	return &ConsoleSettings{
		Activated:           true,
		WiderCompletionMenu: false,
		MultiLine:           true,
		TableFormat:         "ascii",
		SyntaxStyle:         "default",
		EnablePager:         false,
		Pager:               "less -SRXF",
		PromptContinuation:  "-> ",
	}
}

// Validate checks enumerated options
func (s *ConsoleSettings) Validate() error {
	if !TableFormats[s.TableFormat] {
		return fmt.Errorf("table_format %q is not one of: %s", s.TableFormat, strings.Join(sortedKeys(TableFormats), ", "))
	}
	if !SyntaxStyles[s.SyntaxStyle] {
		return fmt.Errorf("syntax_style %q is not one of: %s", s.SyntaxStyle, strings.Join(sortedKeys(SyntaxStyles), ", "))
	}
	for name, style := range s.Colors {
		if strings.ContainsAny(name+style, "\r\n") {
			return fmt.Errorf("color %q must fit on one line", name)
		}
	}
	return nil
}

// MergedColors returns the default theme overlaid with the configured colors.
// Every default element is present in the result.
func (s *ConsoleSettings) MergedColors() map[string]string {
	merged := DefaultColors()
	for name, style := range s.Colors {
		merged[name] = style
	}
	return merged
}

// Executable returns the configured executable for a tool, or the tool name
func (s *ConsoleSettings) Executable(tool string) string {
	if path := strings.TrimSpace(s.Executables[tool]); path != "" {
		return path
	}
	return tool
}

// DefaultColors returns a fresh copy of the default color theme
func DefaultColors() map[string]string {
	return map[string]string{
		"completion-menu.completion.current":      "bg:#ffffff #000000",
		"completion-menu.completion":              "bg:#008888 #ffffff",
		"completion-menu.meta.completion.current": "bg:#44aaaa #000000",
		"completion-menu.meta.completion":         "bg:#448888 #ffffff",
		"completion-menu.multi-column-meta":       "bg:#aaffff #000000",
		"scrollbar.arrow":                         "bg:#003333",
		"scrollbar":                               "bg:#00aaaa",
		"selected":                                "#ffffff bg:#6666aa",
		"search":                                  "#ffffff bg:#4444aa",
		"search.current":                          "#ffffff bg:#44aa44",
		"bottom-toolbar":                          "bg:#222222 #aaaaaa",
		"bottom-toolbar.off":                      "bg:#222222 #888888",
		"bottom-toolbar.on":                       "bg:#222222 #ffffff",
		"search-toolbar":                          "noinherit bold",
		"search-toolbar.text":                     "nobold",
		"system-toolbar":                          "noinherit bold",
		"arg-toolbar":                             "noinherit bold",
		"arg-toolbar.text":                        "nobold",
		"bottom-toolbar.transaction.valid":        "bg:#222222 #00ff5f bold",
		"bottom-toolbar.transaction.failed":       "bg:#222222 #ff005f bold",
		// table output
		"output.header":   "#00ff5f bold",
		"output.odd-row":  "",
		"output.even-row": "",
		"output.null":     "#808080",
	}
}

// TableFormats lists the tabular output formats the consoles understand
var TableFormats = setOf(
	"ascii", "double", "github", "psql", "plain", "simple", "grid", "fancy_grid",
	"pipe", "orgtbl", "jira", "presto", "pretty", "psql_unicode", "rst",
	"mediawiki", "moinmoin", "youtrack", "html", "latex", "latex_booktabs",
	"textile", "tsv", "vertical", "csv", "csv-tab", "minimal",
)

// SyntaxStyles lists the Pygments style names the consoles understand
var SyntaxStyles = setOf(
	"default", "emacs", "friendly", "friendly_grayscale", "colorful", "autumn",
	"murphy", "manni", "material", "monokai", "perldoc", "pastie", "borland",
	"trac", "native", "fruity", "bw", "vim", "vs", "tango", "rrt", "xcode",
	"igor", "paraiso-light", "paraiso-dark", "lovelace", "algol", "algol_nu",
	"arduino", "rainbow_dash", "abap", "solarized-dark", "solarized-light",
	"sas", "staroffice", "stata", "stata-light", "stata-dark", "inkpot",
	"zenburn", "gruvbox-dark", "gruvbox-light", "dracula", "one-dark",
	"lilypond", "nord", "nord-darker", "github-dark", "coffee",
)

func setOf(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
