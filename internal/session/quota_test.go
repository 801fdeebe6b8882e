package session_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/syntara-client/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/syntara-client/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitGuestQuotaConsume(t *testing.T) {
	tests := map[string]struct {
		stored     map[string]string
		wantErr    error
		wantStored string
	}{
		"first search": {
			wantStored: "1",
		},
		"quota used": {
			stored:     map[string]string{session.GuestSearchesKey: "1"},
			wantErr:    session.ErrGuestQuotaUsed,
			wantStored: "1",
		},
		"garbage counter": {
			stored:     map[string]string{session.GuestSearchesKey: "abc"},
			wantStored: "1",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			kv := storagetesting.NewMemory(tt.stored)
			quota := session.NewGuestQuota(kv, session.DefaultGuestSearches)

			err := quota.Consume(context.TODO())

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			assert.Equal(t, tt.wantStored, kv.Snapshot()[session.GuestSearchesKey], "should store counter")
		})
	}
}
