// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed generates and loads the demo data set.

Generate builds 24 vendors with 6 to 14 evaluations each. A vendor's
criteria scores cluster around its band's base value (low 2.1, mid 3.2,
high 4.3); schedule scores skew slightly lower.

	rng := rand.New(rand.NewPCG(1, 2))
	data := seed.Generate(rng, time.Now())
	err := seed.Load(ctx, s, data)

Load returns ErrNotEmpty rather than mixing demo data into a populated store.
*/
package seed
