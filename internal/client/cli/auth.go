package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jfrjs/publicada/internal/client/client"
	"github.com/jfrjs/publicada/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username, password, and optional profile
// claims, and attempts to create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.authService.Register(ctx, userName, string(password), name, email); err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the provider identity is handed to the account service, which
// either adopts the existing profile record or registers a new one, and the
// connectivity Mode is set to ModeOnline. The password is securely wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	identity, err := a.authService.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
			a.setMode(ModeOffline)
		} else {
			log.Printf("Login unsuccessfull: %s", err.Error())
		}
		return err
	}

	user, err := a.accountService.SignIn(ctx, identity)
	if err != nil {
		log.Printf("Error loading profile: %s", err.Error())
		a.authService.Logout()
		return err
	}

	log.Printf("Login successfull")
	fmt.Printf("Signed in as %s\n", user.Name)
	a.setMode(ModeOnline)
	return nil
}

// Logout discards the token pair held by the API client and drops the
// in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout()
	a.accountService.ClearSession()
	return nil
}
