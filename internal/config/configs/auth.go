package configs

// Auth configures session verification. Sessions are JWT cookies minted by
// the external auth service; this service only checks the HMAC signature
// and role claim.
type Auth struct {
	// Secret is the shared HMAC key for session cookies.
	Secret string `env:"SECRET" envDefault:"dev-secret"`
}
