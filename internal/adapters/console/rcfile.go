// Package console adapts the external litecli, pgcli and mycli consoles.
//
// Each console reads its settings from a configobj-style INI file. Adapters
// build a ToolConfig from the host settings plus the overrides the console
// needs, write it to a temporary rc file and point the console at it.
package console

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Section is one [section] of an rc file. Keys keep their insertion order.
type Section struct {
	Name   string
	keys   []string
	values map[string]any
}

// SetBool stores a boolean, written as True or False
func (s *Section) SetBool(key string, value bool) {
	s.set(key, value)
}

// SetInt stores an integer
func (s *Section) SetInt(key string, value int) {
	s.set(key, value)
}

// SetString stores a string, written quoted
func (s *Section) SetString(key string, value string) {
	s.set(key, value)
}

func (s *Section) set(key string, value any) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// keyList returns the keys in insertion order
func (s *Section) keyList() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Bool reads key as a boolean, accepting the spellings configobj accepts
func (s *Section) Bool(key string) (bool, error) {
	v, ok := s.values[key]
	if !ok {
		return false, fmt.Errorf("[%s] %s is not set", s.Name, key)
	}

	switch t := v.(type) {
	case bool:
		return t, nil
	case int:
		if t == 0 || t == 1 {
			return t == 1, nil
		}
	case string:
		switch strings.ToLower(t) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
	}
	return false, fmt.Errorf("[%s] %s: %v is not a boolean", s.Name, key, v)
}

// Int reads key as an integer
func (s *Section) Int(key string) (int, error) {
	v, ok := s.values[key]
	if !ok {
		return 0, fmt.Errorf("[%s] %s is not set", s.Name, key)
	}

	switch t := v.(type) {
	case int:
		return t, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("[%s] %s: %v is not an integer", s.Name, key, v)
}

// String reads key as a string
func (s *Section) String(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("[%s] %s is not set", s.Name, key)
	}
	if t, ok := v.(string); ok {
		return t, nil
	}
	return formatScalar(v), nil
}

// ToolConfig is the in-memory content of a console rc file
type ToolConfig struct {
	sections []*Section
}

// Section returns the named section, creating it at the end if needed
func (c *ToolConfig) Section(name string) *Section {
	for _, s := range c.sections {
		if s.Name == name {
			return s
		}
	}
	s := &Section{Name: name, values: map[string]any{}}
	c.sections = append(c.sections, s)
	return s
}

// lookup returns the named section if present
func (c *ToolConfig) lookup(name string) (*Section, bool) {
	for _, s := range c.sections {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// sectionNames returns section names in order
func (c *ToolConfig) sectionNames() []string {
	names := make([]string, len(c.sections))
	for i, s := range c.sections {
		names[i] = s.Name
	}
	return names
}

// SetMap fills a section from a map, with keys sorted
func (c *ToolConfig) SetMap(name string, values map[string]string) {
	s := c.Section(name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.SetString(k, values[k])
	}
}

// WriteTo renders the configuration in configobj syntax
func (c *ToolConfig) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder

	for i, s := range c.sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("[" + s.Name + "]\n")

		for _, k := range s.keys {
			key, err := quoteKey(k)
			if err != nil {
				return 0, fmt.Errorf("[%s]: %w", s.Name, err)
			}
			val, err := formatValue(s.values[k])
			if err != nil {
				return 0, fmt.Errorf("[%s] %s: %w", s.Name, k, err)
			}
			sb.WriteString(key + " = " + val + "\n")
		}
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// String renders the configuration, ignoring encoding errors
func (c *ToolConfig) String() string {
	var sb strings.Builder
	_, _ = c.WriteTo(&sb)
	return sb.String()
}

func formatScalar(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

func formatValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return formatScalar(v), nil
	}
	return quote(s)
}

// quote wraps a string value so configobj reads it back verbatim.
// configobj has no escape sequences, only the choice of quote characters.
func quote(s string) (string, error) {
	if strings.ContainsAny(s, "\r\n") {
		return "", fmt.Errorf("value %q spans several lines", s)
	}

	hasDouble := strings.Contains(s, `"`)
	hasSingle := strings.Contains(s, `'`)

	switch {
	case !hasDouble:
		return `"` + s + `"`, nil
	case !hasSingle:
		return `'` + s + `'`, nil
	case !strings.Contains(s, `"""`) && !strings.HasSuffix(s, `"`):
		return `"""` + s + `"""`, nil
	case !strings.Contains(s, `'''`) && !strings.HasSuffix(s, `'`):
		return `'''` + s + `'''`, nil
	}
	return "", fmt.Errorf("value %q cannot be quoted", s)
}

func quoteKey(k string) (string, error) {
	if k == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.TrimSpace(k) == k && !strings.ContainsAny(k, "=[]#\"'") {
		return k, nil
	}
	if strings.ContainsAny(k, "\r\n") {
		return "", fmt.Errorf("key %q spans several lines", k)
	}
	if !strings.Contains(k, `"`) {
		return `"` + k + `"`, nil
	}
	if !strings.Contains(k, `'`) {
		return `'` + k + `'`, nil
	}
	return "", fmt.Errorf("key %q cannot be quoted", k)
}
