package file

import "time"

// Well-known configuration keys.
const (
	KeyAPIBaseURL   = "api.base_url"
	KeyCivicBaseURL = "civic.base_url"
	KeyTimeoutMs    = "api.timeout_ms"
	KeyDataDir      = "storage.data_dir"
	KeyVerbose      = "log.verbose"
)

// Defaults applied when the config file leaves a key unset.
const (
	DefaultAPIBaseURL   = "https://api.brado.org.br"
	DefaultCivicBaseURL = "https://dadosabertos.camara.leg.br/api/v2"
)

// Settings resolves the raw key/value store into the handful of values
// the rest of the program actually consumes, with defaults applied.
type Settings struct {
	APIBaseURL   string
	CivicBaseURL string
	Timeout      time.Duration
	DataDir      string
	Verbose      bool
}

// ResolveSettings reads the well-known keys from the store and fills in
// defaults for anything unset. A zero Timeout means "use the adapter's
// own default".
func ResolveSettings(store *ConfigStore) Settings {
	s := Settings{
		APIBaseURL:   store.GetString(KeyAPIBaseURL),
		CivicBaseURL: store.GetString(KeyCivicBaseURL),
		DataDir:      store.GetString(KeyDataDir),
		Verbose:      store.GetBool(KeyVerbose),
	}
	if s.APIBaseURL == "" {
		s.APIBaseURL = DefaultAPIBaseURL
	}
	if s.CivicBaseURL == "" {
		s.CivicBaseURL = DefaultCivicBaseURL
	}
	if ms := store.GetInt(KeyTimeoutMs); ms > 0 {
		s.Timeout = time.Duration(ms) * time.Millisecond
	}
	return s
}
