package outline

// Option configures tracing and bridging observers via functional arguments.
// The core algorithms stay pure: hooks observe, they never steer.
type Option func(*Options)

// Options holds optional observer callbacks for Trace and Bridge.
// The zero value of each hook is replaced by a no-op in DefaultOptions.
type Options struct {
	// OnLoopClosed is called by Trace each time a loop closes,
	// with the loop's index (in emission order) and the finished ring.
	OnLoopClosed func(index int, loop Loop)

	// OnBridge is called by Bridge for every synthesized connector,
	// with its endpoints and its length in unit steps.
	OnBridge func(from, to Point, steps int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnLoopClosed: func(int, Loop) {},
		OnBridge:     func(Point, Point, int) {},
	}
}

// WithOnLoopClosed registers a callback to run whenever Trace closes a loop.
func WithOnLoopClosed(fn func(index int, loop Loop)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLoopClosed = fn
		}
	}
}

// WithOnBridge registers a callback to run for every bridge Bridge emits.
func WithOnBridge(fn func(from, to Point, steps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBridge = fn
		}
	}
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
