package config

import "strings"

// Snapshot is an environment mapping from variable name to value.  A
// missing key and an empty value are both treated as unset.
type Snapshot map[string]string

// Lookup and Set let a Snapshot stand in for envsync.Env.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

func (s Snapshot) Set(key, value string) { s[key] = value }

// Resolve derives the connection configuration from s.  It reads nothing
// but s, never fails, and returns the same record for the same snapshot.
//
// Precedence for BaseURL is HASS_BASE_URL, then HASS_HOST, then
// DefaultBaseURL.  SocketURL is HASS_SOCKET_URL verbatim when set,
// otherwise derived from BaseURL.
func Resolve(s Snapshot) Config {
	base, _ := resolveBase(s)

	socket := s[KeySocketURL]
	if socket == "" {
		socket = DeriveSocketURL(base)
	}

	token := s[KeyToken]
	return Config{
		BaseURL:     base,
		Token:       token,
		SocketURL:   socket,
		SocketToken: token,
	}
}

// BaseURLSource reports which input Resolve takes BaseURL from.
func BaseURLSource(s Snapshot) Source {
	_, src := resolveBase(s)
	return src
}

func resolveBase(s Snapshot) (string, Source) {
	if v := s[KeyBaseURL]; v != "" {
		return v, SourceBaseURL
	}
	if v := s[KeyHost]; v != "" {
		return v, SourceHost
	}
	return DefaultBaseURL, SourceDefault
}

// DeriveSocketURL swaps a leading "http" for "ws" (so "https" becomes
// "wss") and appends SocketPath.  Anything else is kept as is.
func DeriveSocketURL(base string) string {
	if rest, ok := strings.CutPrefix(base, "http"); ok {
		base = "ws" + rest
	}
	return base + SocketPath
}
