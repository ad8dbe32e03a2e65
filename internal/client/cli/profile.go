package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jfrjs/publicada/internal/common"
)

// Whoami prints the signed-in user's profile.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.accountService.CurrentUser()
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("User ID: %s\n", user.UserID)
	fmt.Printf("Name:    %s\n", user.Name)
	fmt.Printf("Email:   %s\n", user.Email)
	return nil
}

// UpdateProfile prompts for a new name and email and saves the profile.
// Pressing Enter on an empty line keeps the current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter new name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter new email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.accountService.UpdateProfile(ctx, name, email)
	if err != nil {
		log.Printf("Error updating profile: %s", err.Error())
		return err
	}

	fmt.Printf("Profile saved: %s <%s>\n", user.Name, user.Email)
	return nil
}

// DeleteAccount asks for confirmation, removes the profile record, and ends
// the session. The session is cleared here, right after a successful delete,
// because the account service leaves that to its caller.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete account? This cannot be undone (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.accountService.DeleteAccount(ctx); err != nil && !errors.Is(err, common.ErrorNotFound) {
		log.Printf("Error deleting account: %s", err.Error())
		return err
	}

	a.accountService.ClearSession()
	a.authService.Logout()

	fmt.Println("Account deleted")
	return nil
}
