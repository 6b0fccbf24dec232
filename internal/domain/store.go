package domain

// KV is the key-value persistence surface the tracker reads and writes.
// Values are plain text; the store never interprets them.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
