package rabbitmq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAcknowledger struct {
	acked  bool
	nacked bool
	err    error
}

func (a *fakeAcknowledger) Ack(bool) error {
	a.acked = true
	return a.err
}

func (a *fakeAcknowledger) Nack(bool, bool) error {
	a.nacked = true
	return a.err
}

func TestUnitHandle(t *testing.T) {
	tests := map[string]struct {
		handlerErr error
		ackErr     error
		wantAcked  bool
		wantNacked bool
		wantErrs   int
	}{
		"ack": {
			wantAcked: true,
		},
		"nack on handler error": {
			handlerErr: assert.AnError,
			wantNacked: true,
			wantErrs:   1,
		},
		"ack error": {
			ackErr:    assert.AnError,
			wantAcked: true,
			wantErrs:  1,
		},
		"nack error": {
			handlerErr: assert.AnError,
			ackErr:     assert.AnError,
			wantNacked: true,
			wantErrs:   2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ack := &fakeAcknowledger{err: tt.ackErr}
			errs := make(chan error, 2)
			body := []byte(`{"requestId":"abc"}`)

			err := handle(context.TODO(), delivery{body: body, ack: ack}, errs, func(_ context.Context, msg []byte) error {
				assert.Equal(t, body, msg, "should pass message body")
				return tt.handlerErr
			})

			require.NoError(t, err, "shouldn't stop consuming")
			assert.Equal(t, tt.wantAcked, ack.acked, "should ack message")
			assert.Equal(t, tt.wantNacked, ack.nacked, "should nack message")
			assert.Len(t, errs, tt.wantErrs, "should report errors")
		})
	}
}

func TestUnitHandleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handle(ctx, delivery{ack: &fakeAcknowledger{}}, make(chan error), func(context.Context, []byte) error {
		return assert.AnError
	})

	require.ErrorIs(t, err, context.Canceled, "should stop when errors can't be reported")
}
