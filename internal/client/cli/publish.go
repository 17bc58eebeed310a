package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/harshpatel958/kontax/internal/client/client"
	"github.com/harshpatel958/kontax/internal/common"
)

// Publish pushes a saved card to the server and prints the hosted link.
// Requires a logged-in session and connectivity.
func (a *App) Publish(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Publishing needs a server session. Run 'login' first.")
		return nil
	}

	id, err := a.promptForID("Enter card id to publish")
	if err != nil {
		return err
	}

	url, err := a.publishService.Publish(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fmt.Println("No such card.")
		case errors.Is(err, client.ErrUnavailable):
			fmt.Println("Server unavailable, try again later.")
			a.setMode(ModeOffline)
		default:
			log.Printf("error: %v", err)
		}
		return err
	}

	fmt.Printf("Hosted card: %s\n", url)
	return nil
}
