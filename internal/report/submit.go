package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/MichalMitros/syntara-client/pkg/v1/commander"
	"github.com/google/uuid"
)

//go:generate mockery --name Commander --filename commander.go

// Default report formats.
const (
	CompetitorFormat  = "pdf"
	DistributorFormat = "xlsx"
)

// Commander sends report commands to backend.
type Commander interface {
	SendReportCommand(ctx context.Context, cmd commander.ReportCommand) error
}

// SubmitterOption is custom configuration of Submitter.
type SubmitterOption func(s *Submitter)

// Submitter validates report request configurations and submits report commands.
type Submitter struct {
	commander     Commander
	kind          commander.ReportKind
	validator     Validator
	defaultFormat string
	clock         Clock
	newID         func() string
}

// NewSubmitter returns new Submitter of reports of kind.
func NewSubmitter(
	cmdr Commander,
	kind commander.ReportKind,
	validator Validator,
	defaultFormat string,
	ops ...SubmitterOption,
) *Submitter {
	s := &Submitter{
		commander:     cmdr,
		kind:          kind,
		validator:     validator,
		defaultFormat: defaultFormat,
		clock:         systemClock{},
		newID:         uuid.NewString,
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// NewCompetitorSubmitter returns Submitter of competitor reports.
func NewCompetitorSubmitter(cmdr Commander, minDate string, ops ...SubmitterOption) *Submitter {
	return NewSubmitter(cmdr, commander.KindCompetitor, NewValidator(minDate), CompetitorFormat, ops...)
}

// NewDistributorSubmitter returns Submitter of distributor reports.
func NewDistributorSubmitter(cmdr Commander, minDate string, ops ...SubmitterOption) *Submitter {
	return NewSubmitter(cmdr, commander.KindDistributor, NewValidator(minDate), DistributorFormat, ops...)
}

// Submit validates configuration and sends report command for subject.
// It returns after transport acknowledged the command. Invalid configurations are never sent.
func (s *Submitter) Submit(ctx context.Context, subject string, cfg RequestConfig) (*commander.ReportCommand, error) {
	if err := s.validator.Validate(cfg); err != nil {
		return nil, err
	}

	items := cfg.SelectedItems()
	sort.Strings(items)

	format := cfg.Format
	if format == "" {
		format = s.defaultFormat
	}

	cmd := commander.ReportCommand{
		ID:          s.newID(),
		Kind:        s.kind,
		Subject:     subject,
		Items:       items,
		DateStart:   cfg.DateStart,
		DateEnd:     cfg.DateEnd,
		Format:      format,
		CCEmail:     cfg.CCEmail,
		RequestedAt: s.clock.Now(),
	}

	if err := s.commander.SendReportCommand(ctx, cmd); err != nil {
		return nil, fmt.Errorf("can't submit %s report: %w", s.kind, err)
	}

	return &cmd, nil
}

// WithClock sets Submitter's custom Clock, it's used by validation too.
func WithClock(c Clock) SubmitterOption {
	return func(s *Submitter) {
		s.clock = c
		s.validator.clock = c
	}
}

// WithIDGenerator sets function generating report request IDs.
func WithIDGenerator(newID func() string) SubmitterOption {
	return func(s *Submitter) {
		s.newID = newID
	}
}
