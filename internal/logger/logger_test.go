package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"nonsense", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(&buf, tt.level)

			log.Debug().Msg("d")
			if got := buf.Len() > 0; got != tt.debugSeen {
				t.Errorf("debug written = %v, want %v", got, tt.debugSeen)
			}

			buf.Reset()
			log.Info().Msg("i")
			if got := buf.Len() > 0; got != tt.infoSeen {
				t.Errorf("info written = %v, want %v", got, tt.infoSeen)
			}
		})
	}
}

func TestNewWithWriterJSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")
	log.Info().Int64("student_id", 7).Msg("student created")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v: %s", err, buf.String())
	}
	if line["service"] != "studentdesk" {
		t.Errorf("service = %v, want studentdesk", line["service"])
	}
	if line["message"] != "student created" {
		t.Errorf("message = %v, want %q", line["message"], "student created")
	}
	if _, ok := line["time"]; !ok {
		t.Error("log line has no time field")
	}
}
