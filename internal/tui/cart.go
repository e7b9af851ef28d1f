package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"shopterm/internal/models"
)

type cartView struct {
	app      *App
	items    []models.CartItem
	products map[int]models.Product

	table  *tview.Table
	status *tview.TextView
}

func (a *App) showCart() {
	v := &cartView{app: a}

	v.table = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	v.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		item, ok := v.selectedItem()
		switch event.Rune() {
		case '+':
			if ok {
				v.setQty(item, item.Qty+1)
			}
			return nil
		case '-':
			if ok {
				v.setQty(item, item.Qty-1)
			}
			return nil
		case 'd':
			if ok {
				v.removeItem(item)
			}
			return nil
		case 'x':
			v.clear()
			return nil
		case 'o':
			v.checkout()
			return nil
		}
		return event
	})

	v.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.table, 0, 1, true).
		AddItem(v.status, 1, 0, false)

	hints := "+/- qty  d remove  x clear  o checkout  " + a.customerHints()
	a.pages.AddAndSwitchToPage("cart", a.screen("Cart", hints, body), true)
	v.reload()
}

func (v *cartView) selectedItem() (models.CartItem, bool) {
	row, _ := v.table.GetSelection()
	if row-1 < 0 || row-1 >= len(v.items) {
		return models.CartItem{}, false
	}
	return v.items[row-1], true
}

func (v *cartView) reload() {
	items, err := v.app.svc.Cart.List(v.app.state.UID, v.app.state.SessionNo)
	if err != nil {
		v.app.showMessage("Could not load cart: "+err.Error(), nil)
		return
	}
	v.items = items
	v.products = map[int]models.Product{}
	for _, item := range items {
		product, err := v.app.svc.Catalog.GetProduct(item.PID)
		if err != nil {
			v.app.showMessage("Could not load cart: "+err.Error(), nil)
			return
		}
		if product != nil {
			v.products[item.PID] = *product
		}
	}
	v.render()
}

func (v *cartView) render() {
	v.table.Clear()
	for col, h := range []string{"PID", "Product", "Unit Price", "Qty", "Line Total"} {
		v.table.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold))
	}

	subtotal := 0.0
	for i, item := range v.items {
		product := v.products[item.PID]
		lineTotal := product.Price * float64(item.Qty)
		subtotal += lineTotal

		row := i + 1
		v.table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", item.PID)))
		v.table.SetCell(row, 1, tview.NewTableCell(product.Name).SetExpansion(1))
		v.table.SetCell(row, 2, tview.NewTableCell(money(product.Price)))
		v.table.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%d", item.Qty)))
		v.table.SetCell(row, 4, tview.NewTableCell(money(lineTotal)))
	}

	if len(v.items) == 0 {
		v.status.SetText("Your cart is empty.")
	} else {
		v.status.SetText(fmt.Sprintf("%d item(s), subtotal %s", len(v.items), money(subtotal)))
	}
}

func (v *cartView) setQty(item models.CartItem, qty int) {
	if qty < 0 {
		return
	}
	if err := v.app.svc.Cart.SetQty(v.app.state.UID, v.app.state.SessionNo, item.PID, qty); err != nil {
		v.app.showMessage("Could not update quantity: "+err.Error(), nil)
		return
	}
	v.reload()
}

func (v *cartView) removeItem(item models.CartItem) {
	product := v.products[item.PID]
	v.app.showConfirm("Remove "+product.Name+" from the cart?", "Remove", "Cancel", func(yes bool) {
		if !yes {
			return
		}
		if err := v.app.svc.Cart.Remove(v.app.state.UID, v.app.state.SessionNo, item.PID); err != nil {
			v.app.showMessage("Could not remove item: "+err.Error(), nil)
			return
		}
		v.reload()
	})
}

func (v *cartView) clear() {
	if len(v.items) == 0 {
		return
	}
	v.app.showConfirm("Remove all items from the cart?", "Clear", "Cancel", func(yes bool) {
		if !yes {
			return
		}
		if err := v.app.svc.Cart.Clear(v.app.state.UID); err != nil {
			v.app.showMessage("Could not clear cart: "+err.Error(), nil)
			return
		}
		v.reload()
	})
}

func (v *cartView) checkout() {
	if len(v.items) == 0 {
		v.app.showMessage("Your cart is empty.", nil)
		return
	}
	v.app.showCheckout(v.items, v.products, v.reload)
}

// showCheckout opens the order summary with a shipping address prompt and
// places the order after confirmation.
func (a *App) showCheckout(items []models.CartItem, products map[int]models.Product, onDone func()) {
	summary := tview.NewTextView().SetDynamicColors(true)
	fmt.Fprintf(summary, "[::b]Order Summary[-:-:-]\n\n")
	subtotal := 0.0
	for _, item := range items {
		product := products[item.PID]
		lineTotal := product.Price * float64(item.Qty)
		subtotal += lineTotal
		fmt.Fprintf(summary, "%-30s %9s x %-3d %10s\n",
			product.Name, money(product.Price), item.Qty, money(lineTotal))
	}
	fmt.Fprintf(summary, "\nSubtotal: %s\n", money(subtotal))

	dismiss := func() {
		a.pages.RemovePage("checkout")
		if onDone != nil {
			onDone()
		}
	}

	form := tview.NewForm().
		AddInputField("Shipping Address", "", 50, nil, nil)
	form.AddButton("Place Order", func() {
		address := form.GetFormItemByLabel("Shipping Address").(*tview.InputField).GetText()
		if address == "" {
			a.showMessage("Address line is required.", nil)
			return
		}
		a.showConfirm("Place order? This cannot be undone.", "Yes", "No", func(yes bool) {
			if !yes {
				return
			}
			ono, err := a.svc.Orders.Checkout(a.state.UID, a.state.SessionNo, address, time.Now())
			if err != nil {
				a.showMessage("Checkout failed: "+err.Error(), nil)
				return
			}
			a.log.Info("order placed", "uid", a.state.UID, "ono", ono)
			a.showMessage(fmt.Sprintf("Order placed. Your order number is %d.", ono), dismiss)
		})
	})
	form.AddButton("Go Back", dismiss)
	form.SetCancelFunc(dismiss)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(summary, 0, 1, false).
		AddItem(form, 5, 0, true)
	layout.SetBorder(true).SetTitle(" Checkout ")

	a.pages.AddPage("checkout", center(layout, 70, 20), true, true)
}
