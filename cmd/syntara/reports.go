package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MichalMitros/syntara-client/internal/handler"
	"github.com/MichalMitros/syntara-client/internal/report"
	"github.com/MichalMitros/syntara-client/pkg/v1/commander"
	"github.com/spf13/cobra"
)

// requestFlags are report request flags shared by report commands.
type requestFlags struct {
	selected []string
	from     string
	to       string
	format   string
	cc       string
	wait     bool
}

func (f *requestFlags) bind(cmd *cobra.Command, selectUsage string) {
	cmd.Flags().StringSliceVarP(&f.selected, "select", "s", nil, selectUsage)
	cmd.Flags().StringVar(&f.from, "from", "", "report start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.to, "to", "", "report end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.format, "format", "", "report file format")
	cmd.Flags().StringVar(&f.cc, "cc", "", "additional email receiving the report")
	cmd.Flags().BoolVar(&f.wait, "wait", false, "wait for report delivery notice")
}

// requested reports whether user asked for report, otherwise only preview is shown.
func (f *requestFlags) requested() bool {
	return len(f.selected) > 0 || f.from != "" || f.to != ""
}

// config returns request configuration with selected names marked in selection.
// Names are matched case insensitively, unknown names are returned separately.
func (f *requestFlags) config(selection map[string]bool) (report.RequestConfig, []string) {
	selected := make(map[string]bool, len(selection))
	for name := range selection {
		selected[name] = false
	}

	var unknown []string
	for _, wanted := range f.selected {
		name, ok := matchName(selected, wanted)
		if !ok {
			unknown = append(unknown, wanted)
			continue
		}
		selected[name] = true
	}

	return report.RequestConfig{
		Selected:  selected,
		DateStart: f.from,
		DateEnd:   f.to,
		Format:    f.format,
		CCEmail:   f.cc,
	}, unknown
}

func matchName(selection map[string]bool, wanted string) (string, bool) {
	wanted = strings.TrimSpace(wanted)
	if _, ok := selection[wanted]; ok {
		return wanted, true
	}

	normalized := report.NormalizeStoreName(wanted)
	for name := range selection {
		if strings.EqualFold(name, wanted) || report.NormalizeStoreName(name) == normalized {
			return name, true
		}
	}

	return "", false
}

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Preview and request market reports",
	}

	cmd.AddCommand(
		newCompetitorReportCmd(a),
		newDistributorReportCmd(a),
		newWatchCmd(a),
	)

	return cmd
}

func newCompetitorReportCmd(a *app) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "competitor <product>",
		Short: "Compare product prices with competitors and request competitor report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			product := strings.Join(args, " ")

			preview, err := a.reports.CompetitorPreview(ctx, product)
			if err != nil {
				return err
			}
			printCompetitorReport(out, preview)

			if !flags.requested() {
				return nil
			}

			cmdr, err := a.reportCommander()
			if err != nil {
				return err
			}
			submitter := report.NewCompetitorSubmitter(cmdr, a.cfg.Reports.CompetitorMinDate)

			return a.submit(ctx, out, submitter, preview.Product, preview.Selection, flags)
		},
	}

	flags.bind(cmd, "competitors included in report")

	return cmd
}

func newDistributorReportCmd(a *app) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "distributor",
		Short: "Show demand of products searched in your store and request distributor report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			view, err := a.reports.DistributorPreview(ctx)
			if err != nil {
				return err
			}
			printDistributorView(out, view)

			if !flags.requested() {
				return nil
			}

			cmdr, err := a.reportCommander()
			if err != nil {
				return err
			}
			submitter := report.NewDistributorSubmitter(cmdr, a.cfg.Reports.DistributorMinDate)

			return a.submit(ctx, out, submitter, view.Store, view.Selection, flags)
		},
	}

	flags.bind(cmd, "products included in report")

	return cmd
}

// submit sends report request configured by flags and optionally waits for its delivery.
func (a *app) submit(
	ctx context.Context,
	out io.Writer,
	submitter *report.Submitter,
	subject string,
	selection map[string]bool,
	flags requestFlags,
) error {
	cfg, unknown := flags.config(selection)
	for _, name := range unknown {
		a.logger.Warn().
			Str("name", name).
			Msg("unknown selection skipped")
	}

	// Queue is bound before submitting, so notice sent right after request can't be missed.
	var (
		consumer handler.Consumer
		queue    string
	)
	if flags.wait {
		var err error
		if consumer, queue, err = a.noticeQueue(true); err != nil {
			return err
		}
	}

	sent, err := submitter.Submit(ctx, subject, cfg)
	if err != nil {
		return err
	}
	printSubmitted(out, sent)

	if !flags.wait {
		return nil
	}

	return a.watch(ctx, out, consumer, queue, sent.ID, true)
}

func newWatchCmd(a *app) *cobra.Command {
	var requestID string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print report delivery notices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filtered := requestID != ""
			consumer, queue, err := a.noticeQueue(filtered)
			if err != nil {
				return err
			}
			return a.watch(cmd.Context(), cmd.OutOrStdout(), consumer, queue, requestID, filtered)
		},
	}

	cmd.Flags().StringVar(&requestID, "request", "",
		"report request ID to watch, only notices sent from now on are printed; all queued notices are printed when empty")

	return cmd
}

// watch prints report notices consumed from queue until ctx is done. With untilFinal set
// it returns after delivered or failed notice of requestID.
func (a *app) watch(
	ctx context.Context,
	out io.Writer,
	consumer handler.Consumer,
	queue string,
	requestID string,
	untilFinal bool,
) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	notices := make(chan commander.ReportNotice)
	han := handler.NewNoticeHandler(consumer, func(notice commander.ReportNotice) {
		select {
		case notices <- notice:
		case <-watchCtx.Done():
		}
	}, requestID, a.logger)

	if err := han.Start(watchCtx, queue); err != nil {
		return err
	}

	fmt.Fprintln(out, "Esperando notificaciones de reportes...")

	for {
		select {
		case <-watchCtx.Done():
			return nil
		case notice := <-notices:
			printNotice(out, notice)
			if untilFinal && notice.Status != commander.NoticeQueued {
				return nil
			}
		}
	}
}
