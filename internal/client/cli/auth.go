package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/krishavya/ufresher/internal/client/backend"
	"github.com/krishavya/ufresher/internal/client/models"
	"github.com/krishavya/ufresher/internal/client/registration"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// registrationFields is the prompt order for the sign-up form.
var registrationFields = []string{"email", "password", "name", "age", "college", "stream", "role", "avatar", "adminCode"}

// Register walks the user through the sign-up form and submits it.
//
// On a validation failure only the rejected fields are prompted again;
// everything the user already typed is kept. The loop runs until the
// submission is accepted, a non-validation error occurs, or input fails.
func (a *App) Register(ctx context.Context) error {
	var sub registration.Submission
	if err := a.promptFields(&sub, registrationFields); err != nil {
		return err
	}

	for {
		account, err := a.auth.SignUp(ctx, sub)
		if err == nil {
			printlnFn(fmt.Sprintf("Registered as %s (%s)", account.Name, account.Role))
			return nil
		}

		var verrs registration.ValidationErrors
		if !errors.As(err, &verrs) {
			if errors.Is(err, backend.ErrEmailTaken) {
				printlnFn("An account with this email already exists.")
			} else {
				printlnFn("Registration failed:", err.Error())
			}
			return err
		}

		failed := make([]string, 0, len(verrs))
		for _, field := range registrationFields {
			if msg, ok := verrs[field]; ok {
				printlnFn(msg)
				failed = append(failed, field)
			}
		}
		if err := a.promptFields(&sub, failed); err != nil {
			return err
		}
	}
}

// promptFields fills in the named submission fields interactively.
func (a *App) promptFields(sub *registration.Submission, fields []string) error {
	for _, field := range fields {
		var err error
		switch field {
		case "email":
			sub.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout)
		case "password":
			sub.Password, err = getPassword(os.Stdout)
		case "name":
			sub.Name, err = getSimpleText(a.reader, "Enter name", os.Stdout)
		case "age":
			sub.Age, err = getSimpleText(a.reader, "Enter age", os.Stdout)
		case "college":
			sub.College, err = getSimpleText(a.reader, "Enter college", os.Stdout)
		case "stream":
			sub.Stream, err = getSimpleText(a.reader, "Enter stream", os.Stdout)
		case "role":
			sub.Role, err = getSimpleText(a.reader, "Enter role (junior or mentor)", os.Stdout)
		case "avatar":
			var choice string
			for i, url := range models.Avatars() {
				printlnFn(fmt.Sprintf("  %d: %s", i+1, url))
			}
			choice, err = getSimpleText(a.reader, fmt.Sprintf("Pick an avatar (1-%d)", len(models.Avatars())), os.Stdout)
			if err == nil {
				n, convErr := strconv.Atoi(choice)
				if convErr != nil {
					n = 0
				}
				sub.AvatarIndex = n - 1
			}
		case "adminCode":
			sub.AdminCode, err = getSimpleText(a.reader, "Admin code (leave empty if none)", os.Stdout)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Login prompts for credentials and signs in. The session manager
// announces a successful sign-in; this handler only reports failures.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.auth.SignIn(ctx, registration.Submission{Email: email, Password: password})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backend.ErrInvalidCredentials):
		printlnFn("Invalid email or password.")
	case errors.Is(err, backend.ErrUnavailable):
		printlnFn("Backend unreachable, try again later.")
	default:
		printlnFn("Login failed:", err.Error())
	}
	return err
}

// Google runs the out-of-band OAuth flow: print the consent URL, let the
// user authorize in a browser, and paste the code back.
func (a *App) Google(ctx context.Context) error {
	url, err := a.auth.GoogleConsentURL(ctx)
	if err != nil {
		printlnFn("Google sign-in unavailable:", err.Error())
		return err
	}
	printlnFn("Open this URL in your browser and authorize:")
	printlnFn(url)

	code, err := getSimpleText(a.reader, "Paste the authorization code", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.auth.CompleteGoogleSignIn(ctx, code); err != nil {
		printlnFn("Google sign-in failed:", err.Error())
		return err
	}
	return nil
}

// Logout signs the current user out. Safe to call when signed out.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not signed in.")
		return nil
	}
	return a.auth.SignOut(ctx)
}

// WhoAmI prints the current profile.
func (a *App) WhoAmI(ctx context.Context) error {
	account := a.auth.Current()
	if account == nil {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>", account.Name, account.Email))
	printlnFn(fmt.Sprintf("Role: %s  Age: %s", account.Role, account.Age))
	printlnFn(fmt.Sprintf("College: %s  Stream: %s", account.College, account.Stream))
	printlnFn(fmt.Sprintf("Avatar: %s", account.Avatar))
	return nil
}
