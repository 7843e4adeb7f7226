// internal/config/loader.go
//
// Process-wide configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` from the process environment:

  1. Reconcile the base-address aliases (`HASS_HOST`, `HASS_BASE_URL`)
     through `internal/envsync`, so other readers of either variable see
     the same value.
  2. Snapshot the `HASS_` variables.
  3. Resolve the snapshot into a `Config`.

`Get()` runs `Load()` once and hands out the cached record for the rest of
the process.  There is no reload; the environment is expected to be final
(including any `.env` file the host process loads) before the first call.

Step 1 does not change what step 3 computes: `Resolve` applies its own
precedence across both aliases.  The reconciliation exists for
collaborators that read the raw variables directly.

Instrumentation
---------------
  • DEBUG span — alias sync action.
  • ERROR span — invariant violation (cannot happen with `Resolve`).
  • INFO  span — final "config loaded" with the resolved addresses.
  • Logs use the global sugared logger (`zap.S()`).
*/
package config

import (
	"sync"

	"go.uber.org/zap"

	"github.com/don4of4/homeassistant-mcp/internal/envsync"
	"github.com/don4of4/homeassistant-mcp/internal/metrics"
)

var (
	once    sync.Once
	current Config
)

// SyncAliases reconciles HASS_HOST and HASS_BASE_URL in env.
func SyncAliases(env envsync.Env) envsync.Action {
	return envsync.Sync(env, KeyHost, KeyBaseURL)
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load syncs aliases in the process environment, then resolves and
// returns the configuration.  It does not touch the cached record.
func Load() Config {
	if act := SyncAliases(envsync.OS); act != envsync.ActionNone {
		zap.S().Debugw("config aliases reconciled", "action", act.String())
	}

	snap := Environ()
	cfg := Resolve(snap)
	src := BaseURLSource(snap)

	if err := cfg.Validate(); err != nil {
		zap.S().Errorw("config invariant violated", "err", err)
	}

	metrics.ConfigInfo.Reset()
	metrics.ConfigInfo.WithLabelValues(cfg.BaseURL, cfg.SocketURL, string(src)).Set(1)
	if cfg.Token != "" {
		metrics.TokenPresent.Set(1)
	} else {
		metrics.TokenPresent.Set(0)
	}

	zap.S().Infow("config loaded",
		"base_url", cfg.BaseURL,
		"base_url_source", string(src),
		"socket_url", cfg.SocketURL,
		"token_set", cfg.Token != "",
	)
	return cfg
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// Get returns the process-wide configuration, loading it on first use.
func Get() Config {
	once.Do(func() { current = Load() })
	return current
}
