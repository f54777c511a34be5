package quad

// Counter counts invocations of the functions it wraps.
type Counter struct {
	n int
}

func NewCounter() *Counter {
	return &Counter{}
}

// Wrap returns f instrumented to increment c once per call.
func (c *Counter) Wrap(f Func) Func {
	return func(x float64) float64 {
		c.n++
		return f(x)
	}
}

func (c *Counter) Count() int { return c.n }

func (c *Counter) Reset() { c.n = 0 }
