// Package core contains the business logic for the DLE API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (SearchResult, Article, Definition, etc.)
// - dle: HTML parsing of dictionary result pages into domain models
// - lookup: Word and URL lookup service combining fetch and parse
// - wordofday: Word-of-the-day feed service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "dle-app-api/core/interfaces"
//	    "dle-app-api/core/lookup"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	lookupService := lookup.NewLookupService(deps, lookup.Config{})
//
//	// Look up a word
//	result, err := lookupService.SearchByWord(ctx, "hola")
//
package core
