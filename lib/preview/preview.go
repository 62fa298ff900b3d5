// Package preview renders device snapshots as HTML for debugging.
//
// The device itself only speaks the line protocol; the preview is a read-only
// view of the same snapshots an external renderer would receive:
//
//	http.Handle("/", preview.Handler(reg, "bench rig"))
package preview

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	surface "github.com/piotrcurious/semantic-surface"
)

// Page returns a full HTML document listing every snapshot in order.
func Page(title string, snaps []surface.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := html.EscapeString(title)
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>%s</title>`+
			`<meta http-equiv="refresh" content="1"></head><body><h1>%s</h1><ul class="surface">`, t, t); err != nil {
			return err
		}
		for _, s := range snaps {
			if _, err := io.WriteString(w, `<li>`); err != nil {
				return err
			}
			if err := Snapshot(s).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</li>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></body></html>`)
		return err
	})
}

// Snapshot returns the HTML fragment for one component snapshot.
func Snapshot(s surface.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body string
		switch v := s.(type) {
		case surface.SliderState:
			body = fmt.Sprintf(`<input type="range" min="%d" max="%d" value="%d" disabled> %d`,
				v.Min, v.Max, v.Value, v.Value)
		case surface.ButtonState:
			state := "released"
			if v.Pressed {
				state = "pressed"
			}
			body = fmt.Sprintf(`<span class="button %s">%s</span>`, state, state)
		case surface.WindowState:
			body = fmt.Sprintf(`<div class="window" style="position:relative;left:%dpx;top:%dpx;width:%dpx;height:%dpx;border:1px solid">%s</div>`,
				v.Position.X, v.Position.Y, v.Size.Width, v.Size.Height,
				strconv.FormatFloat(v.Value, 'g', -1, 64))
		default:
			body = `<span class="unknown">?</span>`
		}
		_, err := fmt.Fprintf(w, `<div class="component %s" id="%s"><b>%s</b> %s</div>`,
			html.EscapeString(string(s.SnapshotType())),
			html.EscapeString(s.SnapshotID()),
			html.EscapeString(s.SnapshotID()),
			body)
		return err
	})
}

// Handler serves the preview page for r's current state.
func Handler(r surface.Renderer, title string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := Page(title, r.RenderAll()).Render(req.Context(), w); err != nil {
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	})
}
