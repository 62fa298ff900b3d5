package surface

import "testing"

func TestEncodeUpdate(t *testing.T) {
	line, err := EncodeUpdate(JSONCodec(), "w1", Patch{"x": 20, "y": 5})
	if err != nil {
		t.Fatalf("EncodeUpdate() error = %v", err)
	}
	// encoding/json sorts map keys.
	want := `{"update":{"id":"w1","x":20,"y":5}}`
	if string(line) != want {
		t.Errorf("EncodeUpdate() = %s, want %s", line, want)
	}

	intent := Parse(JSONCodec(), line)
	if intent.Kind != IntentUpdate || intent.ID != "w1" {
		t.Errorf("Parse(EncodeUpdate()) = %+v, want update for w1", intent)
	}
}

func TestEncodeUpdateIDWins(t *testing.T) {
	line, _ := EncodeUpdate(JSONCodec(), "s1", Patch{"id": "other", "value": 1})
	if intent := Parse(JSONCodec(), line); intent.ID != "s1" {
		t.Errorf("ID = %q, want s1", intent.ID)
	}
}

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantLen int
		wantErr bool
	}{
		{"two components", `{"components":[{"type":"Button","id":"b1","pressed":true},{"type":"Slider","id":"s1"}]}`, 2, false},
		{"empty", `{"components":[]}`, 0, false},
		{"missing list", `{"error":"Invalid JSON"}`, 0, true},
		{"not an object", `[]`, 0, true},
		{"bad item", `{"components":[1]}`, 0, true},
		{"not json", `nope`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comps, err := DecodeFrame(JSONCodec(), []byte(tt.line))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeFrame() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(comps) != tt.wantLen {
				t.Errorf("DecodeFrame() returned %d components, want %d", len(comps), tt.wantLen)
			}
		})
	}
}

func TestIsErrorReply(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		msg    string
		expect bool
	}{
		{"invalid json reply", `{"error":"Invalid JSON"}`, ReplyInvalidJSON, true},
		{"unknown reply", `{"error":"Unknown component","id":"x"}`, ReplyUnknownComponent, true},
		{"snapshot", `{"components":[]}`, "", false},
		{"garbage", `{{`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := IsErrorReply(JSONCodec(), []byte(tt.line))
			if ok != tt.expect || msg != tt.msg {
				t.Errorf("IsErrorReply() = (%q, %v), want (%q, %v)", msg, ok, tt.msg, tt.expect)
			}
		})
	}
}
