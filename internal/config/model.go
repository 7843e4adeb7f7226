// internal/config/model.go
//
// Typed configuration model for the Home Assistant connection.
//
// Context
// -------
// `Config` is the one record every network-facing component reads.  It is
// built by `Resolve` from an environment `Snapshot` and, in a running
// process, cached by `Get` for the process lifetime.
//
// Notes
// -----
//   • JSON names match the variable-style field names consumers expect
//     (`BASE_URL`, `TOKEN`, `SOCKET_URL`, `SOCKET_TOKEN`).
//   • Validation tags state structural invariants only.  URL syntax is
//     not checked here; a bad address surfaces in the client that dials it.

package config

//
// Variable names and defaults
//

const (
	// KeyHost is the documented base-address variable.
	KeyHost = "HASS_HOST"
	// KeyBaseURL is the library-convention base-address variable.  It wins
	// over KeyHost when both are set.
	KeyBaseURL   = "HASS_BASE_URL"
	KeyToken     = "HASS_TOKEN"
	KeySocketURL = "HASS_SOCKET_URL"

	DefaultBaseURL = "http://homeassistant.local:8123"
	SocketPath     = "/api/websocket"

	envPrefix = "HASS_"
)

//
// Root record
//

// Config is the resolved hub connection configuration.  It is handed out
// by value; there is no mutation API.
type Config struct {
	BaseURL     string `json:"BASE_URL"     validate:"required"`
	Token       string `json:"TOKEN"`
	SocketURL   string `json:"SOCKET_URL"   validate:"required"`
	SocketToken string `json:"SOCKET_TOKEN" validate:"eqfield=Token"`
}

// Source names the input that supplied Config.BaseURL.
type Source string

const (
	SourceBaseURL Source = KeyBaseURL
	SourceHost    Source = KeyHost
	SourceDefault Source = "default"
)
