package middleware

import (
	"context"

	"codecamp/internal/domain"
)

type contextKey string

const (
	callerKey    contextKey = "caller"
	moduleIDKey  contextKey = "moduleID"
	requestIDKey contextKey = "requestID"
)

// SetCaller returns a context carrying the request's caller.
func SetCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext returns the caller set by Authenticate, or an anonymous caller.
func CallerFromContext(ctx context.Context) domain.Caller {
	if c, ok := ctx.Value(callerKey).(domain.Caller); ok {
		return c
	}
	return domain.Anonymous()
}

// SetModuleID returns a context carrying the module scope.
func SetModuleID(ctx context.Context, moduleID int) context.Context {
	return context.WithValue(ctx, moduleIDKey, moduleID)
}

// ModuleIDFromContext returns the module scope set by ModuleScope.
func ModuleIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(moduleIDKey).(int)
	return id, ok
}

// RequestIDFromContext returns the correlation id set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
