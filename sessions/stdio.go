package sessions

import (
	"io"
	"os"
)

type Stdin io.Reader

type Stdout io.Writer

type Stderr io.Writer

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) Stdout() Stdout {
	return os.Stdout
}

func (Module) Stderr() Stderr {
	return os.Stderr
}
