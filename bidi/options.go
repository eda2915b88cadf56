package bidi

// --- Options ---------------------------------------------------------------

// config holds the settings for resolving a paragraph.
type config struct {
	direction Direction // explicit paragraph direction, Neutral for auto-detect
	testing   bool      // test mode: recognize uppercase as class R
}

// Option configures the resolution of a paragraph.
type Option func(*config)

// DefaultDirection sets the paragraph's embedding direction. LeftToRight and
// RightToLeft bypass the detection of the paragraph level by rules P2 and P3;
// Neutral (the default) lets the first strong character decide.
func DefaultDirection(dir Direction) Option {
	return func(c *config) {
		c.direction = dir
	}
}

// Testing will set up the classifier to recognize UPPERCASE letters as having
// R2L class. This is a common pattern in bidi algorithm development.
func Testing(b bool) Option {
	return func(c *config) {
		c.testing = b
	}
}

func makeConfig(opts []Option) config {
	c := config{direction: Neutral}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
