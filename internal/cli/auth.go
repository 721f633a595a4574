package cli

import (
	"context"
	"errors"
	"os"

	"github.com/glowlab/skinflow/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and starts a session through the session
// store. A failed match is reported to the user, not returned as an error.
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password.")
			return nil
		}
		return err
	}

	printlnFn("Welcome back!")
	return nil
}

// Signup prompts for a name, email and password and creates the account.
// A duplicate email is reported to the user; any prior session stays active.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.Signup(ctx, email, string(password), name); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			printlnFn("An account with this email already exists.")
			return nil
		}
		return err
	}

	printlnFn("Account created. You are logged in.")
	return nil
}

// Logout ends the session and removes its persisted mirror.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}
