package tui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// showProductDetail opens the product detail form, records the view for
// the current session, and lets the customer add a quantity to the cart.
// onClose runs after the detail is dismissed.
func (a *App) showProductDetail(pid int, onClose func()) {
	product, err := a.svc.Catalog.GetProduct(pid)
	if err != nil {
		a.showMessage("Could not load product: "+err.Error(), nil)
		return
	}
	if product == nil {
		a.showMessage("Product not found.", nil)
		return
	}

	if err := a.svc.Catalog.RecordView(a.state.UID, a.state.SessionNo, pid, time.Now()); err != nil {
		a.log.Error("record view failed", "pid", pid, "error", err)
	}

	info := tview.NewTextView().SetDynamicColors(true)
	fmt.Fprintf(info, "[::b]%s[-:-:-]\n\n", product.Name)
	fmt.Fprintf(info, "PID:       %d\n", product.PID)
	fmt.Fprintf(info, "Category:  %s\n", product.Category)
	fmt.Fprintf(info, "Price:     %s\n", money(product.Price))
	fmt.Fprintf(info, "In stock:  %d\n\n", product.StockCount)
	fmt.Fprintf(info, "%s\n", product.Descr)

	dismiss := func() {
		a.pages.RemovePage("detail")
		if onClose != nil {
			onClose()
		}
	}

	form := tview.NewForm().
		AddInputField("Quantity", "1", 6, tview.InputFieldInteger, nil)
	form.AddButton("Add to Cart", func() {
		qty, ok := parseInt(form.GetFormItemByLabel("Quantity").(*tview.InputField).GetText())
		if !ok || qty <= 0 {
			a.showMessage("Quantity must be a positive number.", nil)
			return
		}
		if !product.InStock() {
			a.showMessage("This product is out of stock.", nil)
			return
		}
		if err := a.svc.Cart.Add(a.state.UID, a.state.SessionNo, pid, qty); err != nil {
			a.showMessage("Could not add to cart: "+err.Error(), nil)
			return
		}
		a.showMessage(fmt.Sprintf("Added %d x %s to your cart.", qty, product.Name), dismiss)
	})
	form.AddButton("Close", dismiss)
	form.SetCancelFunc(dismiss)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(info, 0, 1, false).
		AddItem(form, 5, 0, true)
	layout.SetBorder(true).SetTitle(" Product Detail ")

	a.pages.AddPage("detail", center(layout, 60, 18), true, true)
}
