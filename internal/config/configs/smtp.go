package configs

// SMTP configures the outbound mail transport for deletion notices. When
// Host is empty no mail is sent; notices are logged instead.
type SMTP struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	// From is the sender address. Falls back to User when empty.
	From string `env:"FROM"`
}
