package context

import (
	"context"

	"github.com/muhammadheryan/foodhive/constant"
	"github.com/muhammadheryan/foodhive/model"
)

func GetIdentity(ctx context.Context) (model.Identity, bool) {
	v := ctx.Value(constant.IdentityKey)
	if v == nil {
		return model.Identity{}, false
	}
	id, ok := v.(model.Identity)
	return id, ok
}

func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, constant.IdentityKey, identity)
}

// Detach returns a context that ignores the parent's cancellation but keeps
// its deadline. Used for writes that must not be cut short by a client
// disconnect yet still need a bound.
func Detach(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if deadline, ok := ctx.Deadline(); ok {
		return context.WithDeadline(detached, deadline)
	}
	return context.WithCancel(detached)
}
