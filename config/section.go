package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingValue is returned when a required configuration value is unset.
var ErrMissingValue = errors.New("configuration missing value")

// Section is a named group of configuration values. Values are read from the
// environment: the path "Database:Url" maps to DATABASE_URL.
type Section struct {
	path string
}

// Root is the unnamed top-level section.
var Root = Section{}

// GetSection returns the child section called name.
func (s Section) GetSection(name string) Section {
	return Section{path: s.key(name)}
}

// GetSection returns the top-level section called name.
func GetSection(name string) Section {
	return Root.GetSection(name)
}

// Path is the section path, e.g. "Database".
func (s Section) Path() string { return s.path }

// Value returns the value of name and whether it is set.
func (s Section) Value(name string) (string, bool) {
	value, ok := os.LookupEnv(envKey(s.key(name)))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// RequiredValue returns the value of name or an error wrapping
// ErrMissingValue when it is unset.
func (s Section) RequiredValue(name string) (string, error) {
	value, ok := s.Value(name)
	if !ok {
		return "", fmt.Errorf("%w for: %s", ErrMissingValue, s.key(name))
	}
	return value, nil
}

// MustValue is like RequiredValue but panics when the value is unset.
func (s Section) MustValue(name string) string {
	value, err := s.RequiredValue(name)
	if err != nil {
		panic(err)
	}
	return value
}

// RequiredValue reads a top-level value. See Section.RequiredValue.
func RequiredValue(name string) (string, error) {
	return Root.RequiredValue(name)
}

func (s Section) key(name string) string {
	if s.path == "" {
		return name
	}
	return s.path + ":" + name
}

func envKey(path string) string {
	return strings.ToUpper(strings.ReplaceAll(path, ":", "_"))
}
