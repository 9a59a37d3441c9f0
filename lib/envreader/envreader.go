package envreader

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
)

// IoutilInterface is the part of ioutil the reader needs, so tests can replace it.
type IoutilInterface interface {
	ReadFile(filename string) ([]byte, error)
}

type osIoutil struct{}

func (osIoutil) ReadFile(filename string) ([]byte, error) { return ioutil.ReadFile(filename) }

// EnvReader reads configuration and remembers every required key it could not find.
type EnvReader struct {
	MissingKeys []string
	Errors      bool
	fs          IoutilInterface
}

// Option configures an EnvReader.
type Option func(*EnvReader)

// WithFilesystem replaces the filesystem used by GetFromFile.
func WithFilesystem(fs IoutilInterface) Option {
	return func(r *EnvReader) { r.fs = fs }
}

// NewEnvReader returns an EnvReader reading the process environment through envy.
func NewEnvReader(opts ...Option) *EnvReader {
	r := &EnvReader{fs: osIoutil{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *EnvReader) missing(key string) {
	r.Errors = true
	r.MissingKeys = append(r.MissingKeys, key)
}

// GetEnv returns the value of a required key. Unset and empty keys are recorded as missing.
func (r *EnvReader) GetEnv(key string) string {
	value, err := envy.MustGet(key)
	if err != nil || value == "" {
		r.missing(key)
		return ""
	}
	return value
}
func (r *EnvReader) GetFromFile(path string) string {
	content, err := r.fs.ReadFile(path)
	if err != nil {
		r.missing("file at: " + path)
		return ""
	}
	return string(content)
}
func (r *EnvReader) GetEnvOpt(key string) string {
	return envy.Get(key, "")
}

// GetEnvDefault returns the value of key, or fallback when it is unset or empty.
func (r *EnvReader) GetEnvDefault(key string, fallback string) string {
	if value := envy.Get(key, ""); value != "" {
		return value
	}
	return fallback
}
func (r *EnvReader) GetEnvBool(key string) bool {
	text := r.GetEnv(key)
	if text == "" {
		return false
	}
	value, err := strconv.ParseBool(text)
	if err != nil {
		r.missing(key)
		return false
	}
	return value
}

// GetEnvBoolDefault parses key as a bool, returning fallback when it is unset.
// A value that does not parse is recorded as missing.
func (r *EnvReader) GetEnvBoolDefault(key string, fallback bool) bool {
	text := r.GetEnvOpt(key)
	if text == "" {
		return fallback
	}
	value, err := strconv.ParseBool(text)
	if err != nil {
		r.missing(key)
		return fallback
	}
	return value
}

// GetEnvIntDefault parses key as an int, returning fallback when it is unset.
// A value that does not parse is recorded as missing.
func (r *EnvReader) GetEnvIntDefault(key string, fallback int) int {
	text := r.GetEnvOpt(key)
	if text == "" {
		return fallback
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		r.missing(key)
		return fallback
	}
	return value
}

// Err returns an error naming every missing or malformed key, or nil.
func (r *EnvReader) Err() error {
	if !r.Errors {
		return nil
	}
	return fmt.Errorf("missing or invalid configuration: %s", strings.Join(r.MissingKeys, ", "))
}
