package config

// ConfigBackend abstracts where non-secret settings live per platform:
// UserDefaults on macOS (via the `defaults` CLI), a JSON file under
// $XDG_CONFIG_HOME elsewhere. Secrets never pass through a backend.
type ConfigBackend interface {
	GetString(key string) (val string, ok bool, err error)
	GetInt(key string) (val int, ok bool, err error)
	SetString(key, val string) error
	SetInt(key string, val int) error
}
