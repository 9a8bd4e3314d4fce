package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Edition specifies the game edition the dump comes from (aoc, aok, hd).
	Edition string `mapstructure:"edition" default:"aoc"`
}

const (
	EditionAoC = "aoc"
	EditionAoK = "aok"
	EditionHD  = "hd"
)

// IsValidEdition checks if the configured edition is valid.
func (c Config) IsValidEdition() bool {
	switch c.Edition {
	case EditionAoC, EditionAoK, EditionHD:
		return true
	default:
		return false
	}
}
