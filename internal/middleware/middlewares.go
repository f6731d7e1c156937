// Package middleware holds the echo middlewares shared by every route:
// request ids, tracing, sessions, the request-scoped logger, deadlines,
// rate limiting and the global error handler.
package middleware

import (
	"github.com/urbansymbiosis/dashboard-api/internal/lib/session"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
)

type Middlewares struct {
	Global          *GlobalMiddlewares
	Auth            *AuthMiddleware
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
}

func NewMiddlewares(s *server.Server, sessions *session.Manager) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, sessions),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
