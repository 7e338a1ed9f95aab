package narrative

// Config holds narrative generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for case narration.
// Temperature stays moderate: clinical prose should vary in wording but
// never contradict the reference text.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.6,
	}
}
