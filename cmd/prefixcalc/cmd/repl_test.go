package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/mathpine/go-prefixeval/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	formatter, err := format.New("en-US", -1)
	require.NoError(t, err)

	var buf bytes.Buffer
	return &session{
		vars:      map[string]float64{},
		formatter: formatter,
		out:       &buf,
	}, &buf
}

func TestSession_HandleLine(t *testing.T) {
	t.Parallel()

	t.Run("evaluates an expression", func(t *testing.T) {
		s, buf := newTestSession(t)
		quit := s.handleLine(context.Background(), "+ 5 3")
		assert.False(t, quit)
		assert.Contains(t, buf.String(), "8")
	})

	t.Run("empty line just re-prompts", func(t *testing.T) {
		s, buf := newTestSession(t)
		quit := s.handleLine(context.Background(), "   ")
		assert.False(t, quit)
		assert.Empty(t, buf.String())
	})

	t.Run("quit and exit end the session", func(t *testing.T) {
		for _, cmd := range []string{"quit", "exit"} {
			s, _ := newTestSession(t)
			assert.True(t, s.handleLine(context.Background(), cmd))
		}
	})

	t.Run("syntax errors are reported and session continues", func(t *testing.T) {
		s, buf := newTestSession(t)
		quit := s.handleLine(context.Background(), "5 3")
		assert.False(t, quit)
		assert.Contains(t, buf.String(), "syntax error")
	})

	t.Run("division by zero is reported distinctly", func(t *testing.T) {
		s, buf := newTestSession(t)
		s.handleLine(context.Background(), "/ 5 0")
		assert.Contains(t, buf.String(), "arithmetic error")
	})
}

func TestSession_Let(t *testing.T) {
	t.Parallel()

	t.Run("assignment then use", func(t *testing.T) {
		s, buf := newTestSession(t)
		s.handleLine(context.Background(), "let x + 1 2")
		assert.Equal(t, 3.0, s.vars["x"])

		buf.Reset()
		s.handleLine(context.Background(), "* x 10")
		assert.Contains(t, buf.String(), "30")
	})

	t.Run("missing expression", func(t *testing.T) {
		s, buf := newTestSession(t)
		s.handleLine(context.Background(), "let x")
		assert.Contains(t, buf.String(), "usage: let")
		assert.Empty(t, s.vars)
	})

	t.Run("numeric name rejected", func(t *testing.T) {
		s, buf := newTestSession(t)
		s.handleLine(context.Background(), "let 5 + 1 2")
		assert.Contains(t, buf.String(), "not a usable variable name")
		assert.Empty(t, s.vars)
	})

	t.Run("variable can shadow a function keyword", func(t *testing.T) {
		s, buf := newTestSession(t)
		s.handleLine(context.Background(), "let sin 7")
		require.Equal(t, 7.0, s.vars["sin"])

		buf.Reset()
		s.handleLine(context.Background(), "sin")
		assert.Contains(t, buf.String(), "7")
	})
}

func TestSession_Vars(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		s, buf := newTestSession(t)
		s.handleLine(context.Background(), "vars")
		assert.Contains(t, buf.String(), "no variables defined")
	})

	t.Run("sorted listing", func(t *testing.T) {
		s, buf := newTestSession(t)
		s.vars["b"] = 2
		s.vars["a"] = 1
		s.handleLine(context.Background(), "vars")

		out := buf.String()
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("a = 1")), bytes.Index(buf.Bytes(), []byte("b = 2")), out)
	})
}
