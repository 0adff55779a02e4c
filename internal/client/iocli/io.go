// Package iocli abstracts the terminal for CLI commands so they can be tested without one.
package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal used by CLI commands. Write receives rendered
// templates and pretty-printed collections.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
