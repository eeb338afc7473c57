package main

import (
	"net/http"

	"mvola/cmd/web/handlers"
	"mvola/cmd/web/middleware"
	"mvola/kit/observability"
)

type routerDeps struct {
	info    *handlers.Info
	health  *handlers.Health
	auth    *handlers.Auth
	payment *handlers.Payment
	webhook *handlers.Webhook
}

// newRouter assembles the dispatch table and the middleware chain. Exact
// path match only; mutating routes are POST-only so any other method
// answers 405. CORS wraps everything, so preflight, 404 and 405 responses
// carry the cross-origin headers too.
func newRouter(logger *observability.Logger, deps routerDeps) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", deps.info.Banner)
	mux.HandleFunc("/test", deps.health.Status)
	mux.HandleFunc("POST /auth", deps.auth.Token)
	mux.HandleFunc("POST /payment", deps.payment.Create)
	mux.HandleFunc("POST /webhook", deps.webhook.Receive)

	return middleware.CORS(middleware.Recover(logger, middleware.Logging(logger, mux)))
}
