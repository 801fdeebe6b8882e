package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/MichalMitros/syntara-client/internal/report"
	"github.com/MichalMitros/syntara-client/pkg/v1/commander"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// formatPrice formats COP price without decimals.
func formatPrice(price float64) string {
	return printer.Sprintf("$%d", int64(math.Round(price)))
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printUser(w io.Writer, user *models.User, plan *models.Plan) {
	if user == nil {
		fmt.Fprintln(w, "Invitado")
		return
	}

	fmt.Fprintf(w, "%s %s <%s>\n", user.Name, user.Lastname, user.Email)
	if plan != nil {
		fmt.Fprintf(w, "Plan: %s\n", plan.Type)
	}
}

func printResults(w io.Writer, title string, results []models.SearchResult) {
	fmt.Fprintln(w, title)
	if len(results) == 0 {
		fmt.Fprintln(w, "Sin resultados.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTIENDA\tPRODUCTO\tPRECIO\tUNIDAD\tOFERTA")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Store, r.Product, formatPrice(r.Price), r.MeasureLabel, lo.Ternary(r.IsOffer, "sí", ""))
	}
	_ = tw.Flush()
}

// historyDate returns formatted history date, or date as sent by backend when it can't be parsed.
func historyDate(h models.HistoryItem) string {
	t := h.Time()
	if t.IsZero() {
		return h.Date
	}
	return t.Format("2006-01-02 15:04")
}

func printHistory(w io.Writer, history []models.HistoryItem) {
	if len(history) == 0 {
		fmt.Fprintln(w, "Tu historial está vacío.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFECHA\tPRODUCTO\tCANTIDAD")
	for _, h := range history {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g %s\n", h.ID, historyDate(h), h.Product, h.Quantity, h.Unit)
	}
	_ = tw.Flush()
}

func printCart(w io.Writer, cart *models.Cart) {
	if len(cart.Items) == 0 {
		fmt.Fprintln(w, "Tu carrito está vacío.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTIENDA\tPRODUCTO\tPRECIO\tCANTIDAD")
	for _, item := range cart.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%g %s\n",
			lo.FromPtr(item.ID), item.Store, item.Product, formatPrice(item.Price), item.Quantity, item.Unit)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "Total (%d productos): %s\n", cart.TotalCount, formatPrice(cart.TotalPrice))
}

func printCompetitorReport(w io.Writer, r *report.CompetitorReport) {
	fmt.Fprintf(w, "Análisis de competencia: %s\n", r.Product)

	var own float64
	if r.Self != nil {
		own = r.Self.Price
		fmt.Fprintf(w, "Tu precio: %s (%s)\n", formatPrice(own), r.Self.Date)
	} else {
		fmt.Fprintln(w, "Tu tienda no aparece en los resultados.")
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "TIENDA\tPRECIO\tFECHA\tDIFERENCIA")
	for _, c := range r.Competitors {
		diff := ""
		if r.Self != nil {
			diff = fmt.Sprintf("%+.1f%%", report.DifferencePercent(own, c.Price))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", report.FormatStoreName(c.Store), formatPrice(c.Price), c.Date, diff)
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "Evolución de precios promedio:")
	for _, store := range r.SeriesOrder {
		points := lo.Map(r.Series[store], func(p report.SeriesPoint, _ int) string {
			return fmt.Sprintf("%s %s", p.Date, formatPrice(float64(p.AvgPrice)))
		})
		fmt.Fprintf(w, "  %s: %s\n", store, strings.Join(points, ", "))
	}
	if lower, upper, ok := report.ChartBounds(r.Series); ok {
		fmt.Fprintf(w, "Rango: %s - %s\n", formatPrice(float64(lower)), formatPrice(float64(upper)))
	}

	fmt.Fprintf(w, "Competidores disponibles: %s\n", strings.Join(r.AvailableCompetitors, ", "))
}

func printDistributorView(w io.Writer, v *report.DistributorView) {
	fmt.Fprintf(w, "Inteligencia de distribución: %s\n", v.Store)
	if v.Analysis != "" {
		fmt.Fprintln(w, v.Analysis)
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "PRODUCTO\tBÚSQUEDAS\tDEMANDA\tPRECIO PROMEDIO")
	for _, t := range v.Trends {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", t.Product, t.Searches, report.DemandLevel(t.DemandScore), formatPrice(t.AvgPrice()))
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "Productos disponibles: %s\n", strings.Join(v.Products, ", "))
}

func printSubmitted(w io.Writer, cmd *commander.ReportCommand) {
	fmt.Fprintln(w, msgReportSent)
	fmt.Fprintf(w, "Solicitud: %s (%s, %s a %s)\n", cmd.ID, cmd.Format, cmd.DateStart, cmd.DateEnd)
}

func printNotice(w io.Writer, n commander.ReportNotice) {
	line := fmt.Sprintf("[%s] %s", n.Status, n.RequestID)
	if n.URL != "" {
		line += " " + n.URL
	}
	if n.Message != "" {
		line += " " + n.Message
	}
	fmt.Fprintln(w, line)
}
