package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/viccon/sturdyc"
)

// KeySeparator delimits cache key segments.
const KeySeparator = "::"

// Config holds the knobs for the response cache client.
type Config struct {
	// Capacity is the maximum number of cached responses.
	Capacity int

	// NumShards controls concurrent access; higher trades memory for
	// contention.
	NumShards int

	// BaseTTL is the client-level lifetime of any entry. Per-call TTLs
	// layer on top of it and must not exceed it.
	BaseTTL time.Duration

	// EvictionPercentage is the share of entries dropped when the cache is
	// full, between 1 and 100.
	EvictionPercentage int
}

// DefaultConfig returns the settings used by the server wiring.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          64,
		BaseTTL:            time.Hour,
		EvictionPercentage: 10,
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.BaseTTL <= 0 {
		return &ConfigError{Field: "BaseTTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	return nil
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "cache config error in field " + e.Field + ": " + e.Message
}

// entry wraps a cached payload with its own deadline. sturdyc's TTL is
// fixed per client while callers configure TTL per resource family, so the
// per-call deadline rides inside the value.
type entry struct {
	payload  []byte
	deadline time.Time // zero means no per-entry deadline
}

// Responses is a read-through cache for serialized response bodies, keyed
// per resource, operation and principal.
//
// It exposes no invalidation: an entry produced before a write stays
// visible until its deadline passes or the client evicts it. The staleness
// window after create/update/delete is a known property of this layer, not
// an oversight.
type Responses struct {
	client *sturdyc.Client[entry]
}

// NewResponses builds the response cache from cfg.
func NewResponses(cfg Config) (*Responses, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client := sturdyc.New[entry](cfg.Capacity, cfg.NumShards, cfg.BaseTTL, cfg.EvictionPercentage)
	return &Responses{client: client}, nil
}

// Key builds the deterministic cache key for a resource operation.
// Segments: resource name, operation, principal id, then any qualifiers
// (record id, parent filter). Principal is always part of the key so two
// principals never observe each other's slice.
func Key(resource, op string, principal uint, qualifiers ...string) string {
	parts := make([]string, 0, 3+len(qualifiers))
	parts = append(parts, resource, op, strconv.FormatUint(uint64(principal), 10))
	parts = append(parts, qualifiers...)
	return strings.Join(parts, KeySeparator)
}

// GetOrFetch returns the cached payload for key. On miss, or when the
// entry's own deadline has lapsed, fetch is called and its result stored.
// ttl == 0 stores the entry with no deadline of its own; it then lives
// until capacity eviction or the client BaseTTL. Errors from fetch are
// never cached.
func (r *Responses) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	if e, ok := r.client.Get(key); ok {
		if e.deadline.IsZero() || time.Now().Before(e.deadline) {
			return e.payload, nil
		}
		r.client.Delete(key)
	}

	payload, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	e := entry{payload: payload}
	if ttl > 0 {
		e.deadline = time.Now().Add(ttl)
	}
	r.client.Set(key, e)
	return payload, nil
}
