package port

import "context"

type ApplicationInfo interface {
	// ApplicationOwner returns the user ID of the bot application's registered owner.
	ApplicationOwner(ctx context.Context) (string, error)
}
