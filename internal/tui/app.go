// Package tui renders the terminal interface. Screens translate key and
// form events into service calls; no SQL or business policy lives here.
package tui

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"shopterm/internal/services"
)

// Services bundles the service layer handed to the UI.
type Services struct {
	Auth      *services.AuthService
	Catalog   *services.CatalogService
	Cart      *services.CartService
	Orders    *services.OrderService
	Inventory *services.InventoryService
	Reports   *services.ReportService
}

type App struct {
	app   *tview.Application
	pages *tview.Pages
	svc   Services
	log   *slog.Logger
	state State
}

func New(svc Services, log *slog.Logger) *App {
	return &App{
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
		svc:   svc,
		log:   log,
	}
}

// Run shows the login screen and blocks until the application exits. Any
// session still open when the terminal closes is ended first.
func (a *App) Run() error {
	a.app.SetInputCapture(a.handleGlobalKey)
	a.showLogin()

	err := a.app.SetRoot(a.pages, true).EnableMouse(true).Run()
	a.closeSession()
	return err
}

func (a *App) handleGlobalKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlC {
		a.confirmQuit()
		return nil
	}
	if !a.state.LoggedIn() {
		return event
	}

	switch event.Key() {
	case tcell.KeyF1:
		if a.state.IsCustomer() {
			a.showSearch()
		} else {
			a.showInventory()
		}
		return nil
	case tcell.KeyF2:
		if a.state.IsCustomer() {
			a.showCart()
		} else {
			a.showReport()
		}
		return nil
	case tcell.KeyF3:
		if a.state.IsCustomer() {
			a.showOrders()
		}
		return nil
	case tcell.KeyF8:
		a.logout()
		return nil
	}
	return event
}

// enterHome switches to the landing screen for the logged-in role.
func (a *App) enterHome() {
	if a.state.IsCustomer() {
		a.showSearch()
	} else {
		a.showReport()
	}
}

func (a *App) logout() {
	a.closeSession()
	uid := a.state.UID
	a.state.Reset()
	a.log.Info("user logged out", "uid", uid)
	a.showLogin()
	a.showMessage("Logout successful.", nil)
}

func (a *App) confirmQuit() {
	a.showConfirm("Quit the application?", "Quit", "Cancel", func(yes bool) {
		if yes {
			a.app.Stop()
		}
	})
}

// closeSession ends the current customer session, if any.
func (a *App) closeSession() {
	if !a.state.IsCustomer() || a.state.SessionNo == 0 {
		return
	}
	if err := a.svc.Auth.EndSession(a.state.UID, a.state.SessionNo, time.Now()); err != nil {
		a.log.Error("end session failed", "uid", a.state.UID, "session_no", a.state.SessionNo, "error", err)
	}
	a.state.SessionNo = 0
}

const modalPage = "modal"

// showMessage displays a dismissable notice; then runs after dismissal.
func (a *App) showMessage(text string, then func()) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			a.pages.RemovePage(modalPage)
			if then != nil {
				then()
			}
		})
	a.pages.AddPage(modalPage, modal, true, true)
}

// showConfirm displays a yes/no dialog and reports the choice.
func (a *App) showConfirm(text, yesLabel, noLabel string, done func(bool)) {
	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{yesLabel, noLabel}).
		SetDoneFunc(func(_ int, label string) {
			a.pages.RemovePage(modalPage)
			done(label == yesLabel)
		})
	a.pages.AddPage(modalPage, modal, true, true)
}

// screen wraps a body with the shared header and a footer of key hints.
func (a *App) screen(title, hints string, body tview.Primitive) tview.Primitive {
	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("shopterm - " + title)
	footer := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText(hints)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(footer, 1, 0, false)
}

func (a *App) customerHints() string {
	return "F1 Search  F2 Cart  F3 Past Orders  F8 Logout  Ctrl-C Quit"
}

func (a *App) salesHints() string {
	return "F1 Inventory  F2 Sales Report  F8 Logout  Ctrl-C Quit"
}
