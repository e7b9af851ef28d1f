package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"shopterm/internal/models"
)

// searchView holds the product search screen's paging state.
type searchView struct {
	app      *App
	keyword  string
	page     int
	total    int
	products []models.Product

	input  *tview.InputField
	table  *tview.Table
	status *tview.TextView
}

func (a *App) showSearch() {
	v := &searchView{app: a, page: 1}

	v.input = tview.NewInputField().
		SetLabel("Search: ").
		SetPlaceholder("keyword or phrase")
	v.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			v.keyword = v.input.GetText()
			v.page = 1
			v.reload()
			a.app.SetFocus(v.table)
		}
	})

	v.table = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	v.table.SetSelectedFunc(func(row, _ int) {
		if row-1 >= 0 && row-1 < len(v.products) {
			a.showProductDetail(v.products[row-1].PID, v.reload)
		}
	})
	v.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'n':
			v.nextPage()
			return nil
		case 'p':
			v.prevPage()
			return nil
		case '/':
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

	hints := "Enter search  n/p page  Enter on row: detail  / focus search  " + a.customerHints()
	a.pages.AddAndSwitchToPage("search", a.screen("Search Products", hints, body), true)
	v.render()
}

func (v *searchView) reload() {
	products, total, err := v.app.svc.Catalog.Search(
		v.keyword, v.app.state.UID, v.app.state.SessionNo, time.Now(), v.page,
	)
	if err != nil {
		v.app.showMessage("Search failed: "+err.Error(), nil)
		return
	}
	v.products = products
	v.total = total
	v.render()
}

func (v *searchView) nextPage() {
	if v.page < totalPages(v.total, v.app.svc.Catalog.PageSize()) {
		v.page++
		v.reload()
	}
}

func (v *searchView) prevPage() {
	if v.page > 1 {
		v.page--
		v.reload()
	}
}

func (v *searchView) render() {
	v.table.Clear()
	for col, h := range []string{"PID", "Name", "Category", "Price", "Stock"} {
		v.table.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold))
	}
	for i, p := range v.products {
		row := i + 1
		v.table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", p.PID)))
		v.table.SetCell(row, 1, tview.NewTableCell(p.Name).SetExpansion(1))
		v.table.SetCell(row, 2, tview.NewTableCell(p.Category))
		v.table.SetCell(row, 3, tview.NewTableCell(money(p.Price)))
		v.table.SetCell(row, 4, tview.NewTableCell(fmt.Sprintf("%d", p.StockCount)))
	}

	v.status.SetText(fmt.Sprintf("%d result(s), page %d/%d",
		v.total, v.page, totalPages(v.total, v.app.svc.Catalog.PageSize())))
}
