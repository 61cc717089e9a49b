package storage

import "context"

// Memory is an in-process Store. It backs tests and serves as the
// fallback backend when nothing durable is configured.
type Memory struct {
	slots map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

func (m *Memory) Read(_ context.Context, key string) (string, error) {
	raw, ok := m.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return raw, nil
}

func (m *Memory) Write(_ context.Context, key, raw string) error {
	m.slots[key] = raw
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.slots, key)
	return nil
}
