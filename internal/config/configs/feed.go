package configs

// Feed configures the display feed engine. DisplayCount bounds the valid
// display id range [1, DisplayCount]; out-of-range requests are clamped.
type Feed struct {
	DisplayCount int `env:"DISPLAY_COUNT" envDefault:"3"`
}
