// Package cli provides the command-line interface for the appraiser tool.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/app"
)

// ctxKey is used for storing the application in command contexts
type ctxKey string

const appKey ctxKey = "app"

// SetApp stores the Application in the command's context.
func SetApp(cmd *cobra.Command, a *app.Application) {
	if cmd == nil {
		return
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey, a))
}

// GetAppFromCmd returns the Application stored on cmd or any of its parents.
func GetAppFromCmd(cmd *cobra.Command) *app.Application {
	for c := cmd; c != nil; c = c.Parent() {
		if ctx := c.Context(); ctx != nil {
			if a, ok := ctx.Value(appKey).(*app.Application); ok && a != nil {
				return a
			}
		}
	}
	return nil
}
