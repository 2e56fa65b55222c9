package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/mkarpovs/accountvault/internal/account"
	"github.com/mkarpovs/accountvault/internal/common"
)

func (a *App) register(ctx context.Context) {

	displayName, err := GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	avatarPath, err := GetSimpleText(a.reader, "Avatar image file (optional, Enter to skip)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	reg := account.Registration{
		DisplayName: displayName,
		Email:       email,
		Password:    password,
	}
	if avatarPath != "" {
		img, err := os.ReadFile(avatarPath)
		if err != nil {
			// the account is still worth creating without the image
			fmt.Fprintf(a.out, "could not read avatar file, skipping: %v\n", err)
		} else {
			reg.Avatar = base64.StdEncoding.EncodeToString(img)
		}
	}

	res := a.store.CreateAccount(ctx, reg)
	fmt.Fprintln(a.out, res.Message)
}

func (a *App) login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	user, res := a.store.Login(ctx, email, password)
	fmt.Fprintln(a.out, res.Message)
	if res.Success {
		fmt.Fprintf(a.out, "Hello, %s!\n", user.DisplayName)
	}
}

func (a *App) logout(ctx context.Context) {
	res := a.store.Logout(ctx)
	fmt.Fprintln(a.out, res.Message)
}

func (a *App) whoami(ctx context.Context) {
	u := a.store.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> plan=%s since=%s\n",
		u.DisplayName, u.Email, u.Plan, u.CreatedAt.Format("2006-01-02"))
}

func (a *App) grant(ctx context.Context) {
	if a.store.RequestDirectoryAccess(ctx) {
		fmt.Fprintln(a.out, "storage directory granted")
	} else {
		fmt.Fprintln(a.out, "storage directory not granted")
	}
}

func (a *App) restore(ctx context.Context) {
	if a.store.RestoreSession(ctx) {
		fmt.Fprintf(a.out, "session restored for %s\n", a.store.CurrentUser().Email)
	} else {
		fmt.Fprintln(a.out, "no session to restore")
	}
}
