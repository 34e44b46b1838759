package authtoken

import (
	"context"

	"kuryecini/internal/entities"
)

type contextKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(contextKey{}).(entities.Actor)
	return actor, ok
}
