// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ai wraps a text-generation model for score suggestions, executive
briefs, what-if analysis, risk explanations, policy checks and vendor
recommendations.

# Generator

The model is reached through a one-method interface:

	type Generator interface {
		Generate(ctx context.Context, prompt string) (string, error)
	}

GeminiGenerator implements it with google.golang.org/genai. Every call is
single-shot; there is no retry.

# Errors

  - ErrUpstream: the call failed or returned nothing
  - ErrUnparseable: the reply had no decodable JSON object

Score suggestions are located with ExtractJSON (first '{' to last '}') and
decoded into models.ScoreSuggestion. The other operations return the reply
text unchanged.
*/
package ai
