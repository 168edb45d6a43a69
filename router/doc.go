// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Vendor Performance Manager API.

# Route Registration

NewRouter returns the configured handler with all endpoints:

	h := router.NewRouter(store, svc, cfg)

svc may be nil when no model API key is configured.

# Endpoints

Health:

	GET /health

Vendors:

	GET  /vendors                  - Vendors with avg_score and risk
	GET  /vendors/{id}             - Vendor and evaluation history
	POST /vendors                  - Create vendor
	POST /vendors/{id}/evaluations - Record evaluation

AI (rate limited, shared budget of cfg.AIRateLimit per minute):

	POST /ai/suggest-score
	POST /ai/executive-brief
	POST /ai/what-if
	POST /ai/risk-explain
	POST /ai/policy-check
	POST /ai/recommend-vendor

# Middleware

Every route sits behind CORS for cfg.ClientOrigin. All routes except
/health are wrapped with request logging.
*/
package router
