// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `Resolve` cannot produce an invalid record by construction, so nothing
// here aborts startup.  `Load` logs a violation and `cmd/hassconf -check`
// turns one into a non-zero exit.  The rules live as struct tags on
// `Config`.

package config

import "github.com/go-playground/validator/v10"

//
// validator instance (package-level singleton)
//

var v = validator.New()

//
// public API
//

// Validate returns the first invariant violation, or nil.
func (c Config) Validate() error {
	return v.Struct(c)
}
