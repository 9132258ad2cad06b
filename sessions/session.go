package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/reusee/enu/debugs"
	"github.com/reusee/enu/enuconfigs"
	"github.com/reusee/enu/enulang"
	"github.com/reusee/enu/logs"
)

const (
	bannerText  = "enu: base-10 and sexagesimal calculator\nType 'exit' to quit"
	goodbyeText = "Goodbye!"
)

// Session is one REPL run. Bindings persist across lines for the session lifetime.
type Session struct {
	env *enulang.Env

	newLineReader NewLineReader
	stdout        io.Writer
	stderr        io.Writer
	logger        logs.Logger
	newSpan       logs.NewSpan
	tap           debugs.Tap
	banner        bool
	debugTokens   bool
	debugAST      bool
	errorColor    *color.Color
}

type NewSession func() *Session

func (Module) NewSession(
	newLineReader NewLineReader,
	stdout Stdout,
	stderr Stderr,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	banner enuconfigs.Banner,
	debugTokens enuconfigs.DebugTokens,
	debugAST enuconfigs.DebugAST,
	useColor enuconfigs.Color,
) NewSession {
	return func() *Session {
		errorColor := color.New(color.FgRed)
		if useColor {
			errorColor.EnableColor()
		} else {
			errorColor.DisableColor()
		}
		return &Session{
			env:           enulang.NewEnv(),
			newLineReader: newLineReader,
			stdout:        stdout,
			stderr:        stderr,
			logger:        logger,
			newSpan:       newSpan,
			tap:           tap,
			banner:        bool(banner),
			debugTokens:   bool(debugTokens),
			debugAST:      bool(debugAST),
			errorColor:    errorColor,
		}
	}
}

func (s *Session) Env() *enulang.Env {
	return s.env
}

// Run reads and evaluates lines until exit, end of input or ctx cancellation.
func (s *Session) Run(ctx context.Context) (err error) {
	ctx, _ = s.newSpan(ctx, "session")
	defer func() {
		err = logs.WrapSpan(ctx, err)
	}()

	reader, err := s.newLineReader()
	if err != nil {
		return err
	}
	defer reader.Close()

	if s.banner {
		fmt.Fprintf(s.stdout, "%s\n\n", bannerText)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return wrap(err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			break
		}

		if strings.HasPrefix(line, ":") {
			if err := s.meta(ctx, reader, line); err != nil {
				return err
			}
			continue
		}

		s.eval(ctx, line)
	}

	fmt.Fprintln(s.stdout, goodbyeText)
	return nil
}

func (s *Session) eval(ctx context.Context, line string) {
	s.logger.DebugContext(ctx, "eval", "line", line)

	program, tokens, err := enulang.Compile(line)
	if s.debugTokens && tokens != nil {
		fmt.Fprintf(s.stdout, "tokens: %s\n", debugs.FormatTokens(tokens))
	}
	if err != nil {
		s.printError(ctx, err)
		return
	}
	if s.debugAST {
		fmt.Fprint(s.stdout, debugs.FormatProgram(program))
	}

	value, err := s.env.Run(program)
	if err != nil {
		s.printError(ctx, err)
		return
	}
	if value != nil {
		fmt.Fprintln(s.stdout, value.String())
	}
}

func (s *Session) printError(ctx context.Context, err error) {
	s.logger.DebugContext(ctx, "eval error",
		"phase", enulang.PhaseOf(err),
		"error", err,
	)
	s.errorColor.Fprintf(s.stderr, "error: %v\n", err)
}

func (s *Session) meta(ctx context.Context, reader LineReader, line string) error {
	switch line {

	case ":vars":
		for _, name := range s.env.Names() {
			value, _ := s.env.Get(name)
			fmt.Fprintf(s.stdout, "%s = %s\n", name, value)
		}

	case ":tap":
		// the tap reads stdin itself
		if err := reader.Suspend(); err != nil {
			return wrap(err)
		}
		s.tap(ctx, "session", s.env)
		if err := reader.Resume(); err != nil {
			return wrap(err)
		}

	default:
		s.errorColor.Fprintf(s.stderr, "error: unknown command: %s\n", line)

	}
	return nil
}
