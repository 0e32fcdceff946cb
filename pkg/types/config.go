package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend     string       `json:"backend" yaml:"backend"`
	DataDir     string       `json:"data_dir" yaml:"data_dir"`
	MirrorRules []MirrorRule `json:"mirror_rules,omitempty" yaml:"mirror_rules,omitempty"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. Mirror rules are
// validated individually so one malformed rule does not reject the rest;
// the ledger re-checks rules at application time.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
