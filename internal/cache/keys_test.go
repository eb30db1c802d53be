package cache

import "testing"

func TestEventKeys(t *testing.T) {
	got := EventKeys(7)
	want := []string{"event:7", "event-snapshot:7", "events:all"}
	if len(got) != len(want) {
		t.Fatalf("EventKeys(7) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EventKeys(7)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
