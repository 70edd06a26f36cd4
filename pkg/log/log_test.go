package log

import "testing"

func TestTraceID(t *testing.T) {
	if got := TraceID(Fields{"request_id": "01HZX"}); got != "01HZX" {
		t.Errorf("TraceID with request id = %q", got)
	}

	a := TraceID(Fields{"request_id": "unknown"})
	b := TraceID(nil)
	if len(a) != 36 || len(b) != 36 || a == b {
		t.Errorf("generated trace ids = %q, %q", a, b)
	}
}
