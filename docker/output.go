package docker

// Output is the captured result of a completed invocation. It is created
// once, after the process exits, and never mutated.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with code zero.
func (o *Output) Success() bool {
	return o.ExitCode == 0
}
