package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"shopterm/internal/models"
)

type inventoryView struct {
	app      *App
	query    string
	products []models.Product

	input  *tview.InputField
	table  *tview.Table
	status *tview.TextView
}

// showInventory is the sales-side product maintenance screen. Its search
// accepts a pid, keyword or phrase and is never recorded as customer
// activity.
func (a *App) showInventory() {
	v := &inventoryView{app: a}

	v.input = tview.NewInputField().
		SetLabel("Find: ").
		SetPlaceholder("pid, keyword or phrase (empty lists all)")
	v.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			v.query = v.input.GetText()
			v.reload()
			a.app.SetFocus(v.table)
		}
	})

	v.table = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	v.table.SetSelectedFunc(func(row, _ int) {
		if row-1 >= 0 && row-1 < len(v.products) {
			a.showProductEdit(v.products[row-1], v.reload)
		}
	})
	v.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == '/' {
			a.app.SetFocus(v.input)
			return nil
		}
		return event
	})

	v.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.input, 1, 0, true).
		AddItem(v.table, 0, 1, false).
		AddItem(v.status, 1, 0, false)

	hints := "Enter search  Enter on row: edit  / focus search  " + a.salesHints()
	a.pages.AddAndSwitchToPage("inventory", a.screen("Inventory Management", hints, body), true)
	v.reload()
}

func (v *inventoryView) reload() {
	products, err := v.app.svc.Catalog.SalesSearch(v.query)
	if err != nil {
		v.app.showMessage("Search failed: "+err.Error(), nil)
		return
	}
	v.products = products

	v.table.Clear()
	for col, h := range []string{"PID", "Name", "Category", "Price", "Stock"} {
		v.table.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold))
	}
	for i, p := range products {
		row := i + 1
		v.table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", p.PID)))
		v.table.SetCell(row, 1, tview.NewTableCell(p.Name).SetExpansion(1))
		v.table.SetCell(row, 2, tview.NewTableCell(p.Category))
		v.table.SetCell(row, 3, tview.NewTableCell(money(p.Price)))
		v.table.SetCell(row, 4, tview.NewTableCell(fmt.Sprintf("%d", p.StockCount)))
	}

	v.status.SetText(fmt.Sprintf("%d product(s)", len(products)))
}

// showProductEdit lets sales staff adjust a product's price and stock.
func (a *App) showProductEdit(product models.Product, onDone func()) {
	dismiss := func() {
		a.pages.RemovePage("invEdit")
		if onDone != nil {
			onDone()
		}
	}

	form := tview.NewForm().
		AddInputField("Price", fmt.Sprintf("%.2f", product.Price), 12, tview.InputFieldFloat, nil).
		AddInputField("Stock", strconv.Itoa(product.StockCount), 12, tview.InputFieldInteger, nil)

	form.AddButton("Save", func() {
		priceText := form.GetFormItemByLabel("Price").(*tview.InputField).GetText()
		stockText := form.GetFormItemByLabel("Stock").(*tview.InputField).GetText()

		var newPrice *float64
		var newStock *int
		if price, err := strconv.ParseFloat(priceText, 64); err == nil && price != product.Price {
			newPrice = &price
		}
		if stock, ok := parseInt(stockText); ok && stock != product.StockCount {
			newStock = &stock
		}

		updated, err := a.svc.Inventory.UpdatePriceStock(product.PID, newPrice, newStock)
		if err != nil {
			a.showMessage("Update failed: "+err.Error(), nil)
			return
		}
		if !updated {
			a.showMessage("Nothing to update.", dismiss)
			return
		}
		a.log.Info("product updated", "pid", product.PID)
		a.showMessage("Product updated.", dismiss)
	})
	form.AddButton("Cancel", dismiss)
	form.SetCancelFunc(dismiss)

	form.SetBorder(true).SetTitle(fmt.Sprintf(" Edit %s (pid %d) ", product.Name, product.PID))
	a.pages.AddPage("invEdit", center(form, 48, 9), true, true)
}
