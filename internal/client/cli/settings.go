package cli

import (
	"context"
	"fmt"
)

// Settings prints the effective client configuration and session state.
func (a *App) Settings(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Server:   %s", a.config.ServerBaseURL))
	printlnFn(fmt.Sprintf("Timeout:  %s", a.config.RequestTimeout))
	printlnFn(fmt.Sprintf("Database: %s", a.config.DatabasePath))

	if a.isLoggedIn() {
		printlnFn(fmt.Sprintf("Session:  logged in as %s", a.authService.CurrentEmail()))
	} else {
		printlnFn("Session:  not logged in")
	}

	if err := a.authService.Ping(ctx); err != nil {
		printlnFn("Server:   unreachable")
	} else {
		printlnFn("Server:   online")
	}

	return nil
}
