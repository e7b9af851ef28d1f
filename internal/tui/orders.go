package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"shopterm/internal/models"
)

type ordersView struct {
	app    *App
	page   int
	total  int
	orders []models.Order

	table  *tview.Table
	status *tview.TextView
}

func (a *App) showOrders() {
	v := &ordersView{app: a, page: 1}

	v.table = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	v.table.SetSelectedFunc(func(row, _ int) {
		if row-1 >= 0 && row-1 < len(v.orders) {
			a.showOrderDetail(v.orders[row-1].Ono)
		}
	})
	v.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'n':
			if v.page < totalPages(v.total, v.app.svc.Catalog.PageSize()) {
				v.page++
				v.reload()
			}
			return nil
		case 'p':
			if v.page > 1 {
				v.page--
				v.reload()
			}
			return nil
		}
		return event
	})

	v.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true).
		AddItem(v.status, 1, 0, false)

	hints := "n/p page  Enter on row: detail  " + a.customerHints()
	a.pages.AddAndSwitchToPage("orders", a.screen("Past Orders", hints, body), true)
	v.reload()
}

func (v *ordersView) reload() {
	orders, total, err := v.app.svc.Orders.ListOrders(v.app.state.UID, v.page)
	if err != nil {
		v.app.showMessage("Could not load orders: "+err.Error(), nil)
		return
	}
	v.orders = orders
	v.total = total

	v.table.Clear()
	for col, h := range []string{"Order #", "Date", "Shipping Address", "Total"} {
		v.table.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold))
	}
	for i, o := range orders {
		orderTotal, err := v.app.svc.Orders.OrderTotal(o.Ono)
		if err != nil {
			v.app.showMessage("Could not load orders: "+err.Error(), nil)
			return
		}
		row := i + 1
		v.table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", o.Ono)))
		v.table.SetCell(row, 1, tview.NewTableCell(formatDate(o.Odate)))
		v.table.SetCell(row, 2, tview.NewTableCell(o.ShippingAddress).SetExpansion(1))
		v.table.SetCell(row, 3, tview.NewTableCell(money(orderTotal)))
	}

	v.status.SetText(fmt.Sprintf("%d order(s), page %d/%d",
		total, v.page, totalPages(total, v.app.svc.Catalog.PageSize())))
}

func (a *App) showOrderDetail(ono int) {
	order, lines, err := a.svc.Orders.OrderDetail(ono)
	if err != nil {
		a.showMessage("Could not load order: "+err.Error(), nil)
		return
	}
	if order == nil {
		a.showMessage("Order not found.", nil)
		return
	}

	text := tview.NewTextView().SetDynamicColors(true)
	fmt.Fprintf(text, "[::b]Order %d[-:-:-]\n\n", order.Ono)
	fmt.Fprintf(text, "Date:     %s\n", formatDate(order.Odate))
	fmt.Fprintf(text, "Ship to:  %s\n\n", order.ShippingAddress)

	grand := 0.0
	for _, line := range lines {
		name := fmt.Sprintf("product %d", line.PID)
		if product, err := a.svc.Catalog.GetProduct(line.PID); err == nil && product != nil {
			name = product.Name
		}
		grand += line.Amount()
		fmt.Fprintf(text, "%2d. %-30s %9s x %-3d %10s\n",
			line.LineNo, name, money(line.UPrice), line.Qty, money(line.Amount()))
	}
	fmt.Fprintf(text, "\nGrand total: %s\n", money(grand))

	text.SetBorder(true).SetTitle(fmt.Sprintf(" Order %d ", ono))
	text.SetDoneFunc(func(key tcell.Key) {
		a.pages.RemovePage("orderDetail")
	})

	a.pages.AddPage("orderDetail", center(text, 72, 20), true, true)
}
