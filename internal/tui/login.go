package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/rivo/tview"

	"shopterm/internal/services"
)

// showLogin displays the login form. prefill carries credentials over
// from a successful registration.
func (a *App) showLogin() {
	a.showLoginPrefilled("", "")
}

func (a *App) showLoginPrefilled(uid, password string) {
	form := tview.NewForm().
		AddInputField("User ID", uid, 20, tview.InputFieldInteger, nil).
		AddPasswordField("Password", password, 20, '*', nil)

	form.AddButton("Login", func() {
		uidText := form.GetFormItemByLabel("User ID").(*tview.InputField).GetText()
		pwdField := form.GetFormItemByLabel("Password").(*tview.InputField)

		uidVal, ok := parseInt(uidText)
		if !ok || pwdField.GetText() == "" {
			a.showMessage("User ID and password cannot be empty.", nil)
			return
		}

		user, err := a.svc.Auth.Login(uidVal, pwdField.GetText())
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				pwdField.SetText("")
				a.showMessage("Invalid user id or password.", nil)
				return
			}
			a.showMessage("Login failed: "+err.Error(), nil)
			return
		}

		a.state.UID = user.UID
		a.state.Role = user.Role
		if user.IsCustomer() {
			sessionNo, err := a.svc.Auth.StartSession(user.UID, time.Now())
			if err != nil {
				a.state.Reset()
				a.showMessage("Could not start session: "+err.Error(), nil)
				return
			}
			a.state.SessionNo = sessionNo
		}

		a.log.Info("user logged in", "uid", user.UID, "role", user.Role)
		a.enterHome()
	})
	form.AddButton("Sign up", a.showRegister)
	form.AddButton("Quit", a.confirmQuit)

	form.SetBorder(true).SetTitle(" Login ")
	a.pages.AddAndSwitchToPage("login", a.screen("Login", "Tab to move  Enter to submit  Ctrl-C Quit", center(form, 46, 11)), true)
}

func (a *App) showRegister() {
	form := tview.NewForm().
		AddInputField("Name", "", 30, nil, nil).
		AddInputField("Email", "", 30, nil, nil).
		AddPasswordField("Password", "", 30, '*', nil)

	form.AddButton("Register", func() {
		input := services.RegisterInput{
			Name:     form.GetFormItemByLabel("Name").(*tview.InputField).GetText(),
			Email:    form.GetFormItemByLabel("Email").(*tview.InputField).GetText(),
			Password: form.GetFormItemByLabel("Password").(*tview.InputField).GetText(),
		}

		uid, _, err := a.svc.Auth.Register(input)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				a.showMessage("Email already taken.", nil)
				return
			}
			a.showMessage("Registration failed: "+err.Error(), nil)
			return
		}

		a.log.Info("customer registered", "uid", uid)
		a.showMessage(fmt.Sprintf("Registration successful. Your user id is %d.", uid), func() {
			a.showLoginPrefilled(fmt.Sprintf("%d", uid), input.Password)
		})
	})
	form.AddButton("Back", a.showLogin)
	form.SetCancelFunc(a.showLogin)

	form.SetBorder(true).SetTitle(" Sign up ")
	a.pages.AddAndSwitchToPage("register", a.screen("Sign up", "Tab to move  Enter to submit  Esc back", center(form, 52, 11)), true)
}

// center wraps a primitive in spacers so it renders at a fixed size in
// the middle of the screen.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
