package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.store.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the account vault (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "vault %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.store.LoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, grant, restore, exit")
			}
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami(ctx)
		case "grant":
			a.grant(ctx)
		case "restore":
			a.restore(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "unknown command: %s\n", parts[0])
		}
	}
}
