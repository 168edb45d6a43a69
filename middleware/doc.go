// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /vendors", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms). Each request gets an id (github.com/google/uuid) unless the
client sent X-Request-ID; the id is echoed in the response header.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(cfg.ClientOrigin)(mux),
	}

An empty origin accepts any caller. A configured origin is the only one
allowed and credentials are permitted.

# Rate Limiting

AI routes share one token bucket (golang.org/x/time/rate):

	limiter := middleware.PerMinute(20)
	mux.HandleFunc("POST /ai/what-if", middleware.WithRateLimit(limiter, h.WhatIf))

Requests past the limit get 429 with Retry-After.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (at most MaxBodyBytes, unknown fields ignored):

	var req models.CreateVendorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
