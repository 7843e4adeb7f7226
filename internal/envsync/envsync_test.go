// internal/envsync/envsync_test.go
//
// Unit-tests for alias reconciliation.
//
// Run: go test ./internal/envsync -v

package envsync

import (
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/don4of4/homeassistant-mcp/internal/metrics"
)

const (
	aliasA = "TEST_HOST"
	aliasB = "TEST_BASE_URL"
)

// mapEnv is an in-memory Env.
type mapEnv map[string]string

func (m mapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapEnv) Set(key, value string) { m[key] = value }

func TestSync_OnlyA(t *testing.T) {
	env := mapEnv{aliasA: "http://10.0.1.101:8123"}

	act := Sync(env, aliasA, aliasB)

	assert.Equal(t, ActionCopiedAToB, act)
	assert.Equal(t, "http://10.0.1.101:8123", env[aliasA])
	assert.Equal(t, "http://10.0.1.101:8123", env[aliasB])
}

func TestSync_OnlyB(t *testing.T) {
	env := mapEnv{aliasB: "http://192.168.1.100:8123"}

	act := Sync(env, aliasA, aliasB)

	assert.Equal(t, ActionCopiedBToA, act)
	assert.Equal(t, "http://192.168.1.100:8123", env[aliasA])
	assert.Equal(t, "http://192.168.1.100:8123", env[aliasB])
}

func TestSync_BothSetPreserved(t *testing.T) {
	env := mapEnv{
		aliasA: "http://host.local:8123",
		aliasB: "http://base.local:8123",
	}

	act := Sync(env, aliasA, aliasB)

	assert.Equal(t, ActionNone, act)
	assert.Equal(t, "http://host.local:8123", env[aliasA])
	assert.Equal(t, "http://base.local:8123", env[aliasB])
}

func TestSync_NeitherSet(t *testing.T) {
	env := mapEnv{}

	act := Sync(env, aliasA, aliasB)

	assert.Equal(t, ActionNone, act)
	_, okA := env[aliasA]
	_, okB := env[aliasB]
	assert.False(t, okA)
	assert.False(t, okB)
}

// An empty value is treated as unset and gets overwritten.
func TestSync_EmptyCountsAsUnset(t *testing.T) {
	env := mapEnv{aliasA: "http://a:8123", aliasB: ""}

	act := Sync(env, aliasA, aliasB)

	assert.Equal(t, ActionCopiedAToB, act)
	assert.Equal(t, "http://a:8123", env[aliasB])

	both := mapEnv{aliasA: "", aliasB: ""}
	assert.Equal(t, ActionNone, Sync(both, aliasA, aliasB))
	assert.Equal(t, mapEnv{aliasA: "", aliasB: ""}, both)
}

func TestSync_Idempotent(t *testing.T) {
	cases := map[string]mapEnv{
		"only a":  {aliasA: "http://a:8123"},
		"only b":  {aliasB: "http://b:8123"},
		"both":    {aliasA: "http://a:8123", aliasB: "http://b:8123"},
		"neither": {},
	}

	for name, start := range cases {
		t.Run(name, func(t *testing.T) {
			once := mapEnv{}
			twice := mapEnv{}
			for k, v := range start {
				once[k] = v
				twice[k] = v
			}

			Sync(once, aliasA, aliasB)
			Sync(twice, aliasA, aliasB)
			second := Sync(twice, aliasA, aliasB)

			assert.Equal(t, once, twice)
			assert.Equal(t, ActionNone, second)
		})
	}
}

func TestSync_CountsCopies(t *testing.T) {
	counter := metrics.AliasSyncTotal.WithLabelValues(aliasB)
	before := testutil.ToFloat64(counter)

	Sync(mapEnv{aliasA: "http://a:8123"}, aliasA, aliasB)
	Sync(mapEnv{aliasA: "http://a:8123", aliasB: "http://b:8123"}, aliasA, aliasB)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSync_ProcessEnvironment(t *testing.T) {
	t.Setenv(aliasA, "http://proc.local:8123")
	t.Setenv(aliasB, "")
	require.NoError(t, os.Unsetenv(aliasB))

	act := Sync(OS, aliasA, aliasB)

	require.Equal(t, ActionCopiedAToB, act)
	got, ok := os.LookupEnv(aliasB)
	require.True(t, ok)
	assert.Equal(t, "http://proc.local:8123", got)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "none", ActionNone.String())
	assert.Equal(t, "copied a to b", ActionCopiedAToB.String())
	assert.Equal(t, "copied b to a", ActionCopiedBToA.String())
}
