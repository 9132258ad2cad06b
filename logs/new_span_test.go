package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/enu/modes"
)

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()
		if SpanOf(ctx) != "" {
			t.Fatal()
		}

		sessionCtx, session := newSpan(ctx, "session")
		if SpanOf(sessionCtx) != session {
			t.Fatalf("got %v", SpanOf(sessionCtx))
		}
		tapCtx, tap := newSpan(sessionCtx, "tap")
		if SpanOf(tapCtx) != tap || tap == session {
			t.Fatalf("got %v", SpanOf(tapCtx))
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %q", lines)
		}
		if !strings.Contains(lines[0], "what=session") ||
			!strings.Contains(lines[0], "logs.span="+string(session)) ||
			strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "what=tap") ||
			!strings.Contains(lines[1], "parent="+string(session)) ||
			!strings.Contains(lines[1], "logs.span="+string(tap)) {
			t.Fatalf("got %v", lines[1])
		}
	})
}

func TestWrapSpan(t *testing.T) {
	err := WrapSpan(context.Background(), context.Canceled)
	if err != context.Canceled {
		t.Fatalf("got %v", err)
	}

	ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
	err = WrapSpan(ctx, context.Canceled)
	if !strings.Contains(err.Error(), "span: foo") {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
