package surface

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// maxUnboundedLine caps inbound lines when the protocol has no frame limit.
const maxUnboundedLine = 64 << 10

type inbound struct {
	line     []byte
	overlong bool
}

// Serve runs the device loop over rw until ctx is done or the input ends.
//
// Each iteration handles either one inbound line or one tick, never both, so
// dispatch and snapshot emission are strictly sequential. A tick encodes the
// registry and writes it as one line; a tick whose frame overflows is logged
// and skipped. Inbound lines longer than the frame limit are discarded and
// answered as malformed. Blank lines are skipped.
//
// ticks supplies the snapshot cadence, typically a time.Ticker's channel;
// a nil channel disables snapshots.
//
// Serve returns nil on end of input or cancellation, and an error only when
// reading or writing the channel fails. The reader goroutine exits once rw
// returns from Read, so callers should close rw after cancelling ctx.
func Serve(ctx context.Context, p *Protocol, rw io.ReadWriter, ticks <-chan time.Time) error {
	lines := make(chan inbound)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		readErr <- readLines(ctx, rw, lineLimit(p.maxFrame), lines)
	}()

	w := bufio.NewWriter(rw)
	for {
		select {
		case <-ctx.Done():
			return nil

		case in, ok := <-lines:
			if !ok {
				return <-readErr
			}
			var reply []byte
			if in.overlong {
				p.logger.Printf("rejecting line: longer than %d bytes", lineLimit(p.maxFrame))
				reply = p.reply(ErrorReply{Error: ReplyInvalidJSON})
			} else {
				reply, _ = p.HandleLine(in.line)
			}
			if reply != nil {
				if err := writeLine(w, reply); err != nil {
					return err
				}
			}

		case <-ticks:
			frame, err := p.Snapshot()
			if err != nil {
				p.logger.Printf("skipping snapshot: %v", err)
				continue
			}
			if err := writeLine(w, frame); err != nil {
				return err
			}
		}
	}
}

func lineLimit(maxFrame int) int {
	if maxFrame <= 0 {
		return maxUnboundedLine
	}
	return maxFrame
}

// readLines splits r into newline-terminated lines of at most limit bytes.
func readLines(ctx context.Context, r io.Reader, limit int, out chan<- inbound) error {
	// Two extra bytes hold the CRLF of a line that is exactly limit long.
	br := bufio.NewReaderSize(r, limit+2)
	discarding := false
	for {
		chunk, err := br.ReadSlice('\n')
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			// Drop the rest of the line, then report it once.
			discarding = true
			continue
		case err != nil && !errors.Is(err, io.EOF):
			return fmt.Errorf("read: %w", err)
		}

		var in inbound
		if discarding {
			in.overlong = true
			discarding = false
		} else {
			line := bytes.TrimRight(chunk, "\r\n")
			if len(bytes.TrimSpace(line)) == 0 {
				if err != nil {
					return nil
				}
				continue
			}
			if len(line) > limit {
				in.overlong = true
			} else {
				in.line = bytes.Clone(line)
			}
		}

		select {
		case out <- in:
		case <-ctx.Done():
			return nil
		}
		if err != nil {
			return nil
		}
	}
}

func writeLine(w *bufio.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
