// Package api provides the HTTP API layer for the DLE application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type LookupWordInput struct {
//	    Word     string `path:"word" minLength:"1" maxLength:"100"`
//	    Extended bool   `query:"extended" default:"false"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - CORS handling (when configured)
//
// # Usage Example
//
//	// Create API with middleware
//	cfg := api.APIConfig{
//	    Logger: logger,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	// Register handlers
//	lookupHandler := handlers.NewLookupHandler(lookupService)
//	lookupHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "no dictionary entry: asdfgh | Diccionario de la lengua española",
//	    "instance": "/entries/asdfgh"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes:
// a missing entry becomes 404, a rejected input 400, an unreachable
// dictionary site 503, and an unparseable or failing dictionary page 502.
package api
