package String_View

import "github.com/sirupsen/logrus"

// Options controls package-wide behaviour.
type Options struct {
	Assertions bool         // check preconditions, panicking on violation
	LogLevel   logrus.Level // level applied to the standard logrus logger
}

// DefaultOptions returns assertions off and info-level logging.
func DefaultOptions() Options {
	return Options{
		Assertions: false,
		LogLevel:   logrus.InfoLevel,
	}
}

// Configure applies opts. It is meant to be called once during start-up.
func Configure(opts Options) {
	assertions.Store(opts.Assertions)
	logrus.SetLevel(opts.LogLevel)
	logrus.Debugf("string view configured, assertions=%t", opts.Assertions)
}
