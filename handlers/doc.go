// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Vendor Performance
Manager API.

# Handler Types

  - VendorHandler: vendor listing, detail, creation and evaluations
  - AIHandler: prompt-backed analysis routes

Handlers are created via constructor functions:

	vendorHandler := handlers.NewVendorHandler(s)
	aiHandler := handlers.NewAIHandler(svc) // svc may be nil

# Vendor Routes

	GET  /vendors                  → ListVendors (sorted by average, best first)
	GET  /vendors/{id}             → GetVendor (vendor plus history, newest first)
	POST /vendors                  → CreateVendor (returns id)
	POST /vendors/{id}/evaluations → AddEvaluation (returns id)

Evaluations may reference a vendor that does not exist.

# AI Routes

	POST /ai/suggest-score    → {quality, cost_adherence, schedule, management, overall_score, rationale}
	POST /ai/executive-brief  → {brief}
	POST /ai/what-if          → {analysis}
	POST /ai/risk-explain     → {explanation}
	POST /ai/policy-check     → {decision}
	POST /ai/recommend-vendor → {recommendation}

Without a configured model every AI route answers 503.

# Error Responses

	400  invalid JSON, missing field, bad vendor id
	404  vendor not found
	500  storage failure ("Database error")
	502  model call failed or its reply was unusable
	503  AI not configured

Error bodies are models.ErrorResponse. Details go to the log, never the
client.
*/
package handlers
