// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Stored records:

  - Vendor: id, name, industry, description
  - Evaluation: one department's scored assessment of a vendor

Derived records (never persisted):

  - VendorSummary: Vendor plus avg_score ("3.00") and risk label
  - VendorDetail: a vendor with its evaluation history

Store inputs:

  - NewVendor, NewEvaluation

# Request Types

Request bodies use pointer fields so that an absent field can be told apart
from a zero value. Each request type has a Validate method that reports the
first missing field as a *FieldError wrapping ErrMissingField:

	var req models.CreateVendorRequest
	if err := req.Validate(); err != nil {
		// "name is required"
	}

Score values (1-5) are not range checked; the caller is trusted.

# Risk Labels

	RiskHigh      = "High Risk"
	RiskNeutral   = "Neutral"
	RiskPreferred = "Preferred"

# Response Types

  - CreatedResponse: id of a new vendor or evaluation
  - ScoreSuggestion, BriefResponse, AnalysisResponse, ExplanationResponse,
    DecisionResponse, RecommendationResponse: AI route results
  - ErrorResponse: error, message
*/
package models
