package sessions

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/enu/enuconfigs"
	"golang.org/x/term"
)

// LineReader yields input lines without the trailing newline. End of input and interrupts are io.EOF.
// Suspend releases the terminal until Resume.
type LineReader interface {
	ReadLine() (string, error)
	Suspend() error
	Resume() error
	Close() error
}

type NewLineReader func() (LineReader, error)

func (Module) NewLineReader(
	stdin Stdin,
	prompt enuconfigs.Prompt,
	historyFile enuconfigs.HistoryFile,
) NewLineReader {
	return func() (LineReader, error) {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			reader := &terminalReader{
				config: &readline.Config{
					Prompt:      string(prompt),
					HistoryFile: string(historyFile),
				},
			}
			if err := reader.Resume(); err != nil {
				return nil, err
			}
			return reader, nil
		}
		return &scannerReader{
			scanner: bufio.NewScanner(stdin),
		}, nil
	}
}

type terminalReader struct {
	config *readline.Config
	rl     *readline.Instance
}

func (t *terminalReader) ReadLine() (string, error) {
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (t *terminalReader) Suspend() error {
	if t.rl == nil {
		return nil
	}
	err := t.rl.Close()
	t.rl = nil
	return err
}

func (t *terminalReader) Resume() error {
	if t.rl != nil {
		return nil
	}
	rl, err := readline.NewEx(t.config)
	if err != nil {
		return wrap(err)
	}
	t.rl = rl
	return nil
}

func (t *terminalReader) Close() error {
	return t.Suspend()
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func (s *scannerReader) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// the scanner buffers ahead, so it keeps stdin across a suspension

func (s *scannerReader) Suspend() error {
	return nil
}

func (s *scannerReader) Resume() error {
	return nil
}

func (s *scannerReader) Close() error {
	return nil
}
