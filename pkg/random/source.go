package random

// Source is a single randomness provider in the chain.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Generate returns exactly n random bytes or an error.
	Generate(n int) ([]byte, error)
}

// Optional is implemented by sources whose presence is decided at call time.
// The chain skips a source reporting false without calling Generate.
type Optional interface {
	Available() bool
}

// Func adapts a plain function to a Source.
type Func struct {
	Label string
	Fn    func(n int) ([]byte, error)
}

// Name returns the label of the source.
func (f Func) Name() string {
	return f.Label
}

// Generate calls the wrapped function.
func (f Func) Generate(n int) ([]byte, error) {
	return f.Fn(n)
}
