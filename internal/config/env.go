package config

import (
	"github.com/knadh/koanf/providers/env"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// Environ snapshots every HASS_-prefixed variable of the process
// environment.  Keys keep their original spelling.
func Environ() Snapshot {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return s
	}), nil); err != nil {
		zap.S().Errorw("config env snapshot failed", "err", err)
	}

	snap := make(Snapshot)
	for key, val := range k.All() {
		if s, ok := val.(string); ok {
			snap[key] = s
		}
	}
	zap.S().Debugw("config env snapshot taken", "vars", len(snap))
	return snap
}
