package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Topic records a topic name under the key "topic".
func Topic(name string) slog.Attr {
	return slog.String("topic", name)
}

// QueueID records a queue identifier under the key "queue_id".
func QueueID(id uint32) slog.Attr {
	return slog.Uint64("queue_id", uint64(id))
}

// QueueName records a queue name under the key "queue".
func QueueName(name string) slog.Attr {
	return slog.String("queue", name)
}

// EventID records an event identifier under the key "event_id".
func EventID(id uint32) slog.Attr {
	return slog.Uint64("event_id", uint64(id))
}

// Capacity records a container limit under the key "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Epoch records a registry epoch under the key "epoch".
// If epoch is nil, it returns an empty Attr.
func Epoch(epoch any) slog.Attr {
	if epoch == nil {
		return slog.Attr{}
	}
	return slog.Any("epoch", epoch)
}

// Count records a counter under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
