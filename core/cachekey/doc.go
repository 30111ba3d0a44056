// Package cachekey generates and validates the identifiers that name
// temporary upload-cache slots, and builds the composite cache names used
// as external retrieval tokens.
//
// An identifier has the textual form YYYYMMDD-HHMM-PID-RAND: a
// minute-resolution timestamp, the numeric id of the generating process,
// and a zero-padded 4-digit random suffix. The combination gives
// best-effort uniqueness only. Two sessions generating within the same
// minute in the same process rely solely on the random suffix to avoid a
// collision; callers that need stronger guarantees must inject their own
// randomness via generator options.
//
// # Usage
//
//	gen := cachekey.NewGenerator()
//	id := gen.Generate() // e.g. "20240102-0304-555-0042"
//
//	id, err := cachekey.Parse(raw)
//	if err != nil {
//		// raw does not match the identifier format
//	}
//
// Cache names pair an identifier with a filename and are safe to hand to
// clients for later retrieval:
//
//	name := cachekey.JoinName(id, "photo.jpg") // "20240102-0304-555-0042/photo.jpg"
//	id, filename, err := cachekey.SplitName(name)
//
// # Deterministic generation
//
// The generator's clock, process id, and random source are injectable for
// tests:
//
//	gen := cachekey.NewGenerator(
//		cachekey.WithClock(func() time.Time { return fixed }),
//		cachekey.WithPID(func() int { return 555 }),
//		cachekey.WithRand(func(n int) int { return 42 }),
//	)
package cachekey
