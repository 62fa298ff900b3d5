// Command example plays the renderer side of a device over an in-memory pipe:
// it nudges the slider and drags the window off screen, then prints the
// snapshots the device sends back.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net"
	"time"

	surface "github.com/piotrcurious/semantic-surface"
)

func main() {
	slider, err := surface.NewSlider("s1", 0, 100, 50)
	if err != nil {
		log.Fatal(err)
	}
	window, err := surface.NewWindow("w1", 3.14, 10, 10, 50, 30, 128, 64)
	if err != nil {
		log.Fatal(err)
	}
	reg := surface.NewRegistry()
	reg.MustAdd(slider, window)

	device, renderer := net.Pipe()
	p := surface.NewProtocol(reg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	go func() {
		if err := surface.Serve(ctx, p, device, ticker.C); err != nil {
			log.Printf("device: %v", err)
		}
		device.Close()
	}()

	go func() {
		codec := surface.JSONCodec()
		updates := []struct {
			id    string
			patch surface.Patch
		}{
			{"s1", surface.Patch{"value": 150}},
			{"w1", surface.Patch{"x": 200, "y": 200}},
			{"w1", surface.Patch{"value": 42.5}},
		}
		for _, u := range updates {
			line, err := surface.EncodeUpdate(codec, u.id, u.patch)
			if err != nil {
				log.Fatal(err)
			}
			if _, err := renderer.Write(append(line, '\n')); err != nil {
				return
			}
			time.Sleep(300 * time.Millisecond)
		}
		renderer.Write([]byte("not json\n"))
	}()

	sc := bufio.NewScanner(renderer)
	for sc.Scan() {
		fmt.Println(sc.Text())
	}
}
