package auth

import (
	"context"

	"github.com/elskow/tasktrack/internal/common"
)

type Owned interface {
	OwnerID() string
}

// RequireOwnership loads a resource and checks it belongs to userID. Missing
// resources yield common.ErrNotFound, foreign ones common.ErrForbidden.
func RequireOwnership[T Owned](ctx context.Context, userID string, lookup func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if userID == "" {
		return zero, common.ErrUnauthenticated
	}

	resource, err := lookup(ctx)
	if err != nil {
		return zero, err
	}
	if resource.OwnerID() != userID {
		return zero, common.ErrForbidden
	}
	return resource, nil
}
