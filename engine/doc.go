// Package engine is the reference native engine behind the abi boundary.
//
// It keeps applications, requests, responses, controllers and middleware
// chains in a generation-checked handle table, matches routes with chi and
// serves them with net/http. Built-in chain entries provide CORS and a zap
// access log with request ids. Handler panics become 500 responses and
// bodies over Config.MaxBodyBytes are answered with 413 before any host code
// runs.
//
//	eng := engine.New(engine.DefaultConfig(), engine.WithLogger(zap.NewExample()))
//	br, err := dia.Init(eng)
package engine
