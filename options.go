package cron

import "go.uber.org/zap"

// Option is a constructor function
type Option func(*Parser) error

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) error {
		if logger == nil {
			logger = zap.NewNop()
		}
		p.logger = logger
		return nil
	}
}

// WithParallel validates the five fields concurrently. The reported error is
// still the one of the left-most failing field.
func WithParallel(parallel bool) Option {
	return func(p *Parser) error {
		p.parallel = parallel
		return nil
	}
}

// WithLog sets a log channel. Records are dropped when the channel is full.
func WithLog(log chan Log) Option {
	return func(p *Parser) error {
		p.log = log
		return nil
	}
}
