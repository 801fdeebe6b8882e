package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// ReportCommander sends report commands.
type ReportCommander struct {
	sender Sender
}

// NewReportCommander returns new ReportCommander using provided sender for sending messages.
func NewReportCommander(sender Sender) ReportCommander {
	return ReportCommander{
		sender: sender,
	}
}

// SendReportCommand sends report command.
// Returned nil error means the command was accepted by transport.
func (c ReportCommander) SendReportCommand(ctx context.Context, cmd ReportCommand) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal report command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
