package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MichalMitros/syntara-client/internal/platform/rabbitmq"
	"github.com/MichalMitros/syntara-client/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// ErrMissingRequestID is returned for report notices without request ID.
var ErrMissingRequestID = errors.New("report notice without request ID")

// Consumer consumes messages from queue.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// NoticeFunc receives decoded report notices.
type NoticeFunc func(notice commander.ReportNotice)

// NoticeHandler handles report notices from RMQ.
type NoticeHandler struct {
	consumer  Consumer
	onNotice  NoticeFunc
	requestID string
	logger    *zerolog.Logger
}

// NewNoticeHandler returns new NoticeHandler passing notices to onNotice.
// Non-empty requestID limits handled notices to single report request. Notices of other
// requests are acknowledged and dropped, so filtered handler should consume private queue.
func NewNoticeHandler(consumer Consumer, onNotice NoticeFunc, requestID string, logger *zerolog.Logger) *NoticeHandler {
	return &NoticeHandler{
		consumer:  consumer,
		onNotice:  onNotice,
		requestID: requestID,
		logger:    logger,
	}
}

// Start starts consuming report notices from queue. Handling errors are logged.
func (h *NoticeHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.consumer.Consume(ctx, queue, h.handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle report notice")
		}
	}()

	return nil
}

func (h *NoticeHandler) handle(_ context.Context, message []byte) error {
	notice, err := decodeNotice(message)
	if err != nil {
		return err
	}

	if h.requestID != "" && notice.RequestID != h.requestID {
		h.logger.Debug().
			Str("requestId", notice.RequestID).
			Msg("notice of other request skipped")
		return nil
	}

	h.logger.Debug().
		Str("requestId", notice.RequestID).
		Str("status", string(notice.Status)).
		Msg("report notice received")

	h.onNotice(*notice)

	return nil
}

func decodeNotice(msg []byte) (*commander.ReportNotice, error) {
	var notice commander.ReportNotice
	if err := json.Unmarshal(msg, &notice); err != nil {
		return nil, fmt.Errorf("can't decode report notice: %w", err)
	}

	if notice.RequestID == "" {
		return nil, ErrMissingRequestID
	}

	return &notice, nil
}
