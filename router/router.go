// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/vpm/ai"
	"github.com/danielhkuo/vpm/cliparse"
	"github.com/danielhkuo/vpm/handlers"
	"github.com/danielhkuo/vpm/middleware"
	"github.com/danielhkuo/vpm/store"
)

// Banner is the body served at the root path.
const Banner = "vendor-performance-manager API v1"

// NewRouter wires every route. svc may be nil, in which case the AI routes
// answer 503.
func NewRouter(s store.Store, svc *ai.Service, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	vendorHandler := handlers.NewVendorHandler(s)
	aiHandler := handlers.NewAIHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Vendors and evaluations
	mux.HandleFunc("GET /vendors", middleware.WithLogging(vendorHandler.ListVendors))
	mux.HandleFunc("GET /vendors/{id}", middleware.WithLogging(vendorHandler.GetVendor))
	mux.HandleFunc("POST /vendors", middleware.WithLogging(vendorHandler.CreateVendor))
	mux.HandleFunc("POST /vendors/{id}/evaluations", middleware.WithLogging(vendorHandler.AddEvaluation))

	// AI routes share one process-wide limiter
	limiter := middleware.PerMinute(cfg.AIRateLimit)
	limited := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithRateLimit(limiter, h))
	}
	mux.HandleFunc("POST /ai/suggest-score", limited(aiHandler.SuggestScore))
	mux.HandleFunc("POST /ai/executive-brief", limited(aiHandler.ExecutiveBrief))
	mux.HandleFunc("POST /ai/what-if", limited(aiHandler.WhatIf))
	mux.HandleFunc("POST /ai/risk-explain", limited(aiHandler.RiskExplain))
	mux.HandleFunc("POST /ai/policy-check", limited(aiHandler.PolicyCheck))
	mux.HandleFunc("POST /ai/recommend-vendor", limited(aiHandler.RecommendVendor))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(Banner))
	})

	return middleware.CORS(cfg.ClientOrigin)(mux)
}
