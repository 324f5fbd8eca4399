// Package cache stores computed report parts for a fixed time-to-live.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"news_analytics/internal/domain"
)

// DefaultTTL keeps a report part for thirty days.
const DefaultTTL = 30 * 24 * time.Hour

// Key derives the storage key for a report kind and window.
func Key(kind string, window domain.Window) string {
	suffix := "all"
	if !window.AllTime() {
		suffix = strconv.Itoa(window.Months())
	}
	sum := md5.Sum([]byte(kind + "_" + suffix))
	return hex.EncodeToString(sum[:])
}

type envelope struct {
	WrittenAt time.Time       `json:"written_at"`
	Data      json.RawMessage `json:"data"`
}

func encode(value any, now time.Time) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{WrittenAt: now, Data: data})
}

// decode unmarshals raw into dst when the entry is still fresh.
func decode(raw []byte, dst any, now time.Time, ttl time.Duration) (bool, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false, err
	}
	if now.Sub(env.WrittenAt) > ttl {
		return false, nil
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(_ context.Context, _ string, _ any) bool { return false }

func (Noop) Set(_ context.Context, _ string, _ any) {}
