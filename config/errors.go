package config

import "fmt"

// ConfigError reports a settings document that cannot drive a palette:
// unparseable input, a missing or malformed key, or a combination of values
// the generator cannot divide by.
type ConfigError struct {
	// Key is the dotted path of the offending setting, empty when the
	// document as a whole is at fault.
	Key string
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	msg := e.Msg
	if e.Key != "" {
		msg = fmt.Sprintf("%s: %s", e.Key, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid settings: %s: %v", msg, e.Err)
	}
	return "invalid settings: " + msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(key, format string, args ...any) *ConfigError {
	return &ConfigError{Key: key, Msg: fmt.Sprintf(format, args...)}
}
