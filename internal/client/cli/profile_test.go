package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/jfrjs/publicada/internal/client/models"
	"github.com/jfrjs/publicada/internal/common"
)

func TestWhoami_NoSession(t *testing.T) {
	a := &App{accountService: &fakeAccountService{}}

	if err := a.Whoami(context.Background()); err == nil {
		t.Fatalf("want error without a session")
	}
}

func TestWhoami_WithSession(t *testing.T) {
	account := &fakeAccountService{user: &models.User{UserID: "u-1", Name: "Alice"}}
	a := &App{accountService: account}

	if err := a.Whoami(context.Background()); err != nil {
		t.Fatalf("Whoami err: %v", err)
	}
}

func TestUpdateProfile_ForwardsInputs(t *testing.T) {
	account := &fakeAccountService{updateUser: &models.User{UserID: "u-1", Name: "Alicia", Email: "a@example.org"}}
	a := &App{accountService: account}

	restore := stubInputs(t, []string{"Alicia", ""}, nil)
	defer restore()

	if err := a.UpdateProfile(context.Background()); err != nil {
		t.Fatalf("UpdateProfile err: %v", err)
	}
	if account.updateArgs[0] != "Alicia" || account.updateArgs[1] != "" {
		t.Fatalf("unexpected update args: %v", account.updateArgs)
	}
}

func TestUpdateProfile_ErrorPropagates(t *testing.T) {
	account := &fakeAccountService{updateErr: errors.New("store down")}
	a := &App{accountService: account}

	restore := stubInputs(t, []string{"x", "y"}, nil)
	defer restore()

	if err := a.UpdateProfile(context.Background()); err == nil {
		t.Fatalf("want error from UpdateProfile")
	}
}

func TestDeleteAccount_Confirmed(t *testing.T) {
	auth := &fakeAuthService{}
	account := &fakeAccountService{user: &models.User{UserID: "u-1"}}
	a := &App{authService: auth, accountService: account}

	restore := stubInputs(t, []string{"yes"}, nil)
	defer restore()

	if err := a.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("DeleteAccount err: %v", err)
	}
	if !account.deleteCalled {
		t.Fatalf("DeleteAccount not forwarded to account service")
	}
	if !account.sessionEnded {
		t.Fatalf("session not cleared after delete")
	}
	if !auth.loggedOut {
		t.Fatalf("tokens not discarded after delete")
	}
}

func TestDeleteAccount_Cancelled(t *testing.T) {
	account := &fakeAccountService{user: &models.User{UserID: "u-1"}}
	a := &App{authService: &fakeAuthService{}, accountService: account}

	restore := stubInputs(t, []string{"no"}, nil)
	defer restore()

	if err := a.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("DeleteAccount err: %v", err)
	}
	if account.deleteCalled {
		t.Fatalf("DeleteAccount called despite cancellation")
	}
	if account.sessionEnded {
		t.Fatalf("session cleared despite cancellation")
	}
}

func TestDeleteAccount_RecordAlreadyGoneStillEndsSession(t *testing.T) {
	auth := &fakeAuthService{}
	account := &fakeAccountService{user: &models.User{UserID: "u-1"}, deleteErr: common.ErrorNotFound}
	a := &App{authService: auth, accountService: account}

	restore := stubInputs(t, []string{"yes"}, nil)
	defer restore()

	if err := a.DeleteAccount(context.Background()); err != nil {
		t.Fatalf("DeleteAccount err: %v", err)
	}
	if !account.sessionEnded {
		t.Fatalf("session not cleared")
	}
	if !auth.loggedOut {
		t.Fatalf("tokens not discarded")
	}
}

func TestDeleteAccount_ErrorKeepsSession(t *testing.T) {
	account := &fakeAccountService{user: &models.User{UserID: "u-1"}, deleteErr: errors.New("store down")}
	a := &App{authService: &fakeAuthService{}, accountService: account}

	restore := stubInputs(t, []string{"yes"}, nil)
	defer restore()

	if err := a.DeleteAccount(context.Background()); err == nil {
		t.Fatalf("want error from DeleteAccount")
	}
	if account.sessionEnded {
		t.Fatalf("session cleared despite delete failure")
	}
}
