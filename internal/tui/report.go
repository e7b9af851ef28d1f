package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"shopterm/internal/models"
)

const reportTopK = 3

// showReport renders the sales report: a weekly summary as of a chosen
// date plus the top products by orders and by views, ties included.
func (a *App) showReport() {
	text := tview.NewTextView().SetDynamicColors(true)

	input := tview.NewInputField().
		SetLabel("As of (YYYY-MM-DD): ").
		SetText(time.Now().Format("2006-01-02")).
		SetFieldWidth(12)

	render := func() {
		asOf, err := time.Parse("2006-01-02", input.GetText())
		if err != nil {
			a.showMessage("Enter the date as YYYY-MM-DD.", nil)
			return
		}
		a.renderReport(text, asOf)
	}
	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			render()
		}
	})

	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(input, 1, 0, true).
		AddItem(text, 0, 1, false)

	hints := "Enter refresh  " + a.salesHints()
	a.pages.AddAndSwitchToPage("report", a.screen("Sales Report", hints, body), true)
	render()
}

func (a *App) renderReport(text *tview.TextView, asOf time.Time) {
	summary, err := a.svc.Reports.WeeklySummary(asOf)
	if err != nil {
		a.showMessage("Could not build report: "+err.Error(), nil)
		return
	}
	byOrders, err := a.svc.Reports.TopProductsByOrders(reportTopK, true)
	if err != nil {
		a.showMessage("Could not build report: "+err.Error(), nil)
		return
	}
	byViews, err := a.svc.Reports.TopProductsByViews(reportTopK, true)
	if err != nil {
		a.showMessage("Could not build report: "+err.Error(), nil)
		return
	}

	text.Clear()
	fmt.Fprintf(text, "[::b]Weekly Summary[-:-:-]  (7 days up to %s)\n\n", asOf.Format("2006-01-02"))
	fmt.Fprintf(text, "Orders:                 %d\n", summary.DistinctOrders)
	fmt.Fprintf(text, "Distinct products sold: %d\n", summary.DistinctProductsSold)
	fmt.Fprintf(text, "Distinct customers:     %d\n", summary.DistinctCustomers)
	fmt.Fprintf(text, "Total sales:            %s\n", money(summary.TotalSalesAmount))
	fmt.Fprintf(text, "Avg per customer:       %s\n\n", money(summary.AvgAmountPerCustomer))

	a.writeTopList(text, "Top Products by Orders", byOrders, "order(s)")
	a.writeTopList(text, "Top Products by Views", byViews, "view(s)")
}

func (a *App) writeTopList(text *tview.TextView, title string, counts []models.ProductCount, unit string) {
	fmt.Fprintf(text, "[::b]%s[-:-:-]\n", title)
	if len(counts) == 0 {
		fmt.Fprintf(text, "  (no data)\n\n")
		return
	}
	for _, c := range counts {
		name := fmt.Sprintf("product %d", c.PID)
		if product, err := a.svc.Catalog.GetProduct(c.PID); err == nil && product != nil {
			name = product.Name
		}
		fmt.Fprintf(text, "  %-34s %4d %s\n", fmt.Sprintf("%s (pid %d)", name, c.PID), c.Count, unit)
	}
	fmt.Fprintf(text, "\n")
}
