package surface

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"time"
)

// TestSession drives a Protocol line by line and records what it would have
// written to the channel.
//
// Use it for unit tests of component behavior through the wire format,
// without a transport or a ticker:
//
//	s := surface.NewTestSession(reg)
//	s.Send(`{"update":{"id":"s1","value":150}}`)
//	frame, _ := s.Snapshot()
//
// For tests that need the real loop (framing, cadence), use TestServe.
type TestSession struct {
	Protocol *Protocol
	Replies  []string
	Results  []Result
}

// NewTestSession creates a session over reg with the given protocol options.
func NewTestSession(reg *Registry, opts ...Option) *TestSession {
	return &TestSession{Protocol: NewProtocol(reg, opts...)}
}

// Send handles one line and records its reply, if any.
func (s *TestSession) Send(line string) Result {
	reply, res := s.Protocol.HandleLine([]byte(line))
	if reply != nil {
		s.Replies = append(s.Replies, string(reply))
	}
	s.Results = append(s.Results, res)
	return res
}

// LastReply returns the most recent reply, or "" if none was sent.
func (s *TestSession) LastReply() string {
	if len(s.Replies) == 0 {
		return ""
	}
	return s.Replies[len(s.Replies)-1]
}

// Snapshot encodes the registry as the next tick would.
func (s *TestSession) Snapshot() (string, error) {
	frame, err := s.Protocol.Snapshot()
	if err != nil {
		return "", err
	}
	return string(frame), nil
}

// TestConn is an in-memory io.ReadWriter for Serve: reads come from the
// given input, writes are collected.
type TestConn struct {
	in  io.Reader
	mu  sync.Mutex
	out bytes.Buffer
}

// NewTestConn creates a connection whose input is the given text.
func NewTestConn(input string) *TestConn {
	return &TestConn{in: bytes.NewBufferString(input)}
}

func (c *TestConn) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *TestConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

// Lines returns every line written so far, without terminators.
func (c *TestConn) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := c.out.String()
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// TestServe runs Serve over the given input to completion, with no ticks,
// and returns the written lines. End of input stops the loop.
func TestServe(p *Protocol, input string) ([]string, error) {
	conn := NewTestConn(input)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := Serve(ctx, p, conn, nil)
	return conn.Lines(), err
}
