package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testConfig() Config {
	return Config{Interval: time.Hour, Format: "json", MaxFrame: 1024}
}

func TestRunStdioEndsAtEOF(t *testing.T) {
	in := strings.NewReader("not json\n" + `{"update":{"id":"s1","value":150}}` + "\n")
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := run(ctx, testConfig(), in, &out, quietLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := out.String(); got != `{"error":"Invalid JSON"}`+"\n" {
		t.Errorf("output = %q, want one invalid JSON reply", got)
	}
}

func TestRunRejectsBadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	layout := "components:\n  - {type: Button, id: x}\n  - {type: Button, id: x}\n"
	if err := os.WriteFile(path, []byte(layout), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	cfg := testConfig()
	cfg.Layout = path
	if err := run(context.Background(), cfg, strings.NewReader(""), io.Discard, quietLogger()); err == nil {
		t.Fatal("run() should fail on duplicate ids")
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	cfg := testConfig()
	cfg.Format = "xml"
	if err := run(context.Background(), cfg, strings.NewReader(""), io.Discard, quietLogger()); err == nil {
		t.Fatal("run() should fail on an unknown format")
	}
}

func TestSnapshotCommand(t *testing.T) {
	var out bytes.Buffer
	if err := snapshot(testConfig(), &out, quietLogger()); err != nil {
		t.Fatalf("snapshot() error = %v", err)
	}
	want := `{"components":[` +
		`{"type":"Slider","id":"s1","value":50,"min":0,"max":100},` +
		`{"type":"Button","id":"b1","pressed":false},` +
		`{"type":"Window","id":"w1","value":3.14,"position":{"x":10,"y":10},"size":{"width":50,"height":30}}` +
		`]}` + "\n"
	if out.String() != want {
		t.Errorf("snapshot() = %s\nwant %s", out.String(), want)
	}

	cfg := testConfig()
	cfg.MaxFrame = 40
	if err := snapshot(cfg, io.Discard, quietLogger()); err == nil {
		t.Error("snapshot() should fail when the frame overflows")
	}
}

func TestListenServesTCPClient(t *testing.T) {
	// Reserve a free port, then hand it to run.
	probe, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := probe.Addr().String()
	probe.Close()

	cfg := testConfig()
	cfg.Listen = addr
	cfg.Interval = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, strings.NewReader(""), io.Discard, quietLogger()) }()

	var conn net.Conn
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn, err = net.Dial("tcp", addr)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("dial: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(`{"update":{"id":"s1","value":-10}}` + "\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	sc := bufio.NewScanner(conn)
	found := false
	for sc.Scan() {
		if strings.Contains(sc.Text(), `"id":"s1","value":0`) {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("never saw the clamped slider in a snapshot: %v", sc.Err())
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("run() error = %v", err)
	}
}
