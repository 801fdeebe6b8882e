package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MichalMitros/syntara-client/internal/platform"
)

// GuestSearchesKey is key under which number of guest searches is persisted.
const GuestSearchesKey = "syntara_guest_searches"

// DefaultGuestSearches is number of free searches allowed without login.
const DefaultGuestSearches = 1

// ErrGuestQuotaUsed is returned when guest used all free searches.
var ErrGuestQuotaUsed = errors.New("guest search quota used, please log in")

// GuestQuota gates searches of not logged in users.
type GuestQuota struct {
	kv    KV
	limit int
}

// NewGuestQuota returns new GuestQuota allowing limit searches.
func NewGuestQuota(kv KV, limit int) GuestQuota {
	return GuestQuota{
		kv:    kv,
		limit: limit,
	}
}

// Used returns number of searches done as guest. Unparsable counter counts as zero.
func (q GuestQuota) Used(ctx context.Context) (int, error) {
	raw, err := q.kv.Get(ctx, GuestSearchesKey)
	if errors.Is(err, platform.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("can't read guest searches: %w", err)
	}

	used, err := strconv.Atoi(raw)
	if err != nil {
		return 0, nil
	}

	return used, nil
}

// Consume takes one guest search or returns ErrGuestQuotaUsed.
func (q GuestQuota) Consume(ctx context.Context) error {
	used, err := q.Used(ctx)
	if err != nil {
		return err
	}

	if used >= q.limit {
		return ErrGuestQuotaUsed
	}

	if err := q.kv.Set(ctx, GuestSearchesKey, strconv.Itoa(used+1)); err != nil {
		return fmt.Errorf("can't store guest searches: %w", err)
	}

	return nil
}
