// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with retry logic
// - http/colly: Colly-based HTTP client with a browser-like request profile
// - logger/logrus: Logrus-backed structured logger
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # HTTP Clients
//
// The standard client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, "")
//	resp, err := client.Get(ctx, "https://dle.rae.es/hola")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// The colly client presents a fuller browser profile, which the dictionary
// site expects before serving real pages:
//
//	client := colly.NewCollyHTTPClient(30*time.Second, "")
//	resp, err := client.Get(ctx, "https://dle.rae.es/hola")
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger(logrus.Config{Level: "info", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "word":   "hola",
//	    "action": "lookup",
//	})
//
package infrastructure
