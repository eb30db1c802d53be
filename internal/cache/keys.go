package cache

import "fmt"

// Keys shared by every service pointed at the same Redis. The event service
// owns them and clears all of them when an event changes.

const AllEventsKey = "events:all"

func EventKey(id int64) string {
	return fmt.Sprintf("event:%d", id)
}

// EventSnapshotKey holds the copy of an event other services keep for display.
func EventSnapshotKey(id int64) string {
	return fmt.Sprintf("event-snapshot:%d", id)
}

// EventKeys lists every key that must go when event id is updated or deleted.
func EventKeys(id int64) []string {
	return []string{EventKey(id), EventSnapshotKey(id), AllEventsKey}
}
