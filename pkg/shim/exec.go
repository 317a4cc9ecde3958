package shim

// Execer replaces the current process image with another program.
// Implementations only return on failure.
type Execer interface {
	Exec(path string, argv, env []string) error
}
