package bodyparser

// DefaultLimit is the maximum accepted body size when none is configured.
const DefaultLimit int64 = 100 << 10

// Config holds body parser settings loaded from the environment.
type Config struct {
	BodyLimit int64 `env:"BODY_LIMIT" envDefault:"102400"` // BodyLimit is the maximum body size in bytes.
}

// Options converts the config into parser options. Zero values are skipped.
func (c Config) Options() []Option {
	if c.BodyLimit <= 0 {
		return nil
	}
	return []Option{WithLimit(c.BodyLimit)}
}
