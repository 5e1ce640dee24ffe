package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hiddenhaul/haul/internal/client/api"
	"github.com/hiddenhaul/haul/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session is established and persisted, and a greeting is
// printed. If the server is unreachable (errors.Is(err, api.ErrUnavailable))
// a friendlier message is shown; every error is still returned to the
// caller. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Fprintln(a.out, "Server unavailable, try again later.")
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	return nil
}

// Register prompts for the account fields and creates a new account.
// The backend establishes the session in the same response, so a
// successful registration leaves the user logged in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter address", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Account type (user/seller, empty for user)", os.Stdout)
	if err != nil {
		return err
	}
	switch models.Role(role) {
	case "", models.RoleUser, models.RoleSeller:
	default:
		fmt.Fprintln(a.out, "Account type must be user or seller")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeByteArray(password)

	user, err := a.auth.Register(ctx, api.Registration{
		Name:     name,
		Phone:    phone,
		Address:  address,
		Email:    email,
		Password: string(password),
		Role:     models.Role(role),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Logout drops the session and its persisted copy. It is safe to call
// while logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func wipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
