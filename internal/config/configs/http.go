package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// ExposeErrors enables human-readable detail strings in error
	// responses next to the stable machine codes. Keep off outside of
	// diagnostics; details can leak internals.
	ExposeErrors bool `env:"EXPOSE_ERRORS" envDefault:"false"`
}
