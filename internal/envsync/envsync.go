// internal/envsync/envsync.go
//
// Alias reconciliation for environment variables.
//
// Context
// -------
// Some settings are known under two variable names.  Before anything reads
// them, `Sync` makes sure that whenever at least one name holds a value,
// both names do, so external tools inspecting either one see the same
// address.  When both names are already set they are left alone; no
// precedence is imposed here.  Precedence belongs to the resolver in
// `internal/config`.
//
// A variable counts as set when it is present and non-empty.
package envsync

import (
	"os"

	"go.uber.org/zap"

	"github.com/don4of4/homeassistant-mcp/internal/metrics"
)

// Env is a mutable view of environment variables.
type Env interface {
	Lookup(key string) (string, bool)
	Set(key, value string)
}

// OS is the process environment.
var OS Env = osEnv{}

type osEnv struct{}

func (osEnv) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// Set logs and drops the error; os.Setenv only fails on malformed keys.
func (osEnv) Set(key, value string) {
	if err := os.Setenv(key, value); err != nil {
		zap.S().Errorw("setenv failed", "key", key, "err", err)
	}
}

// Action reports what Sync changed.
type Action int

const (
	ActionNone Action = iota
	ActionCopiedAToB
	ActionCopiedBToA
)

func (a Action) String() string {
	switch a {
	case ActionCopiedAToB:
		return "copied a to b"
	case ActionCopiedBToA:
		return "copied b to a"
	default:
		return "none"
	}
}

// Sync reconciles the alias pair (a, b) in env:
//
//   - a set, b unset:   b := a
//   - b set, a unset:   a := b
//   - both set:         untouched
//   - neither set:      untouched
//
// Repeated calls are stable.
func Sync(env Env, a, b string) Action {
	va, okA := lookupSet(env, a)
	vb, okB := lookupSet(env, b)

	switch {
	case okA && !okB:
		copyAlias(env, a, b, va)
		return ActionCopiedAToB
	case okB && !okA:
		copyAlias(env, b, a, vb)
		return ActionCopiedBToA
	}
	return ActionNone
}

func lookupSet(env Env, key string) (string, bool) {
	v, ok := env.Lookup(key)
	return v, ok && v != ""
}

func copyAlias(env Env, from, to, value string) {
	env.Set(to, value)
	metrics.AliasSyncTotal.WithLabelValues(to).Inc()
	zap.S().Debugw("env alias synced", "from", from, "to", to)
}
