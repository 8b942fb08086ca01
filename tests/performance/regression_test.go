// ABOUTME: Performance regression tests for the page parser and lookup path
// ABOUTME: Guards latency, memory, and goroutine budgets under repeated parses

package performance

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"sync"
	"testing"
	"time"

	"dle-app-api/core/dle"
	"dle-app-api/core/interfaces"
	"dle-app-api/core/lookup"
	logruslogger "dle-app-api/infrastructure/logger/logrus"
	"github.com/stretchr/testify/assert"
)

// perfEntryHTML is a result page with the block shapes the parser walks:
// the lemma header, numbered senses with categories and an example, and a
// complex form with its own sense.
const perfEntryHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8"/>
  <title>hola | Diccionario de la lengua española</title>
  <link rel="canonical" href="https://dle.rae.es/hola"/>
  <meta name="description" content="1. interj. U. como salutación familiar."/>
</head>
<body>
  <div id="resultados">
    <article id="KYtnnhF">
      <header class="f" title="Definición de hola">hola</header>
      <p class="n2">Voz expr.</p>
      <p class="j" id="KYtnnhF|1">
        <span class="n_acep">1.</span> <abbr class="d" title="interjección">interj.</abbr> <abbr title="Usada">U.</abbr> como salutación familiar. <span class="h">¡Hola, Pepe!</span>
      </p>
      <p class="j" id="KYtnnhF|2">
        <span class="n_acep">2.</span> <abbr class="d" title="interjección">interj.</abbr> <abbr title="Usada">U.</abbr> para denotar extrañeza, placentera o desagradable.
      </p>
      <p class="k" id="WgDtAs2">hola y adiós</p>
      <p class="m">
        <span class="n_acep">1.</span> <abbr class="d" title="locución interjectiva">loc. interj.</abbr> <abbr title="coloquial">coloq.</abbr> U. para despedirse apenas llegado.
      </p>
    </article>
  </div>
</body>
</html>`

// perfNotFoundHTML is the no-match page shape: related entries in n1
// blocks where articles would be.
const perfNotFoundHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <title>asdfgh | Diccionario de la lengua española</title>
</head>
<body>
  <div id="resultados">
    <div class="n1"><a href="/asado">asado</a></div>
    <div class="n1"><a href="/asfalto">asfalto</a></div>
  </div>
</body>
</html>`

// perfMockHTTPClient serves canned dictionary pages for performance testing
type perfMockHTTPClient struct {
	delay time.Duration
	html  string
}

func (m *perfMockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	return &perfMockResponse{
		body: []byte(m.html),
	}, nil
}

type perfMockResponse struct {
	body []byte
}

func (r *perfMockResponse) StatusCode() int { return 200 }
func (r *perfMockResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(r.body))
}
func (r *perfMockResponse) Header(key string) string { return "" }

func perfLogger() interfaces.Logger {
	return logruslogger.NewLogrusLogger(logruslogger.Config{Level: "error"})
}

// BenchmarkParseVariants compares the plain parse against the
// stats-collecting one
func BenchmarkParseVariants(b *testing.B) {
	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err := dle.Parse(perfEntryHTML)
			if err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("ParseWithStats", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, err := dle.ParseWithStats(perfEntryHTML)
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

// TestEnsureNoParsePerformanceRegression validates parse latency requirements
func TestEnsureNoParsePerformanceRegression(t *testing.T) {
	const iterations = 200

	// Warm up both paths so neither side pays one-time costs
	for i := 0; i < 10; i++ {
		_, _ = dle.Parse(perfEntryHTML)
		_, _, _ = dle.ParseWithStats(perfEntryHTML)
	}

	plainStart := time.Now()
	for i := 0; i < iterations; i++ {
		_, err := dle.Parse(perfEntryHTML)
		assert.NoError(t, err)
	}
	plainAvg := time.Since(plainStart) / iterations

	statsStart := time.Now()
	for i := 0; i < iterations; i++ {
		_, _, err := dle.ParseWithStats(perfEntryHTML)
		assert.NoError(t, err)
	}
	statsAvg := time.Since(statsStart) / iterations

	t.Logf("Parse latency: plain=%v, with stats=%v", plainAvg, statsAvg)

	// A full page parse stays well under 10ms
	assert.Less(t, plainAvg, 10*time.Millisecond,
		"Parse is too slow: %v per page", plainAvg)
	assert.Less(t, statsAvg, 10*time.Millisecond,
		"ParseWithStats is too slow: %v per page", statsAvg)

	// Stats collection rides along on the same walk and must stay in the
	// same cost class as the plain parse
	assert.LessOrEqual(t, statsAvg, plainAvg*3,
		"Stats collection is too expensive: plain=%v, with stats=%v", plainAvg, statsAvg)
}

// TestMonitorMemoryUsage ensures repeated parses do not leak
func TestMonitorMemoryUsage(t *testing.T) {
	pages := []struct {
		name    string
		html    string
		wantErr bool
	}{
		{"EntryPage", perfEntryHTML, false},
		{"NoMatchPage", perfNotFoundHTML, true},
	}

	for _, page := range pages {
		t.Run(page.name, func(t *testing.T) {
			// Get initial memory stats
			var m1 runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&m1)

			// Run operations
			for i := 0; i < 100; i++ {
				_, err := dle.Parse(page.html)
				if page.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			}

			// Get final memory stats
			runtime.GC()
			var m2 runtime.MemStats
			runtime.ReadMemStats(&m2)

			// Calculate memory growth
			heapGrowth := int64(m2.HeapAlloc) - int64(m1.HeapAlloc)

			t.Logf("Memory usage - Initial: %v KB, Final: %v KB, Growth: %v KB",
				m1.HeapAlloc/1024, m2.HeapAlloc/1024, heapGrowth/1024)

			// Ensure reasonable memory usage (less than 10MB growth)
			assert.Less(t, heapGrowth, int64(10*1024*1024),
				"Excessive memory growth detected")
		})
	}
}

// TestCheckGoroutineLeaks ensures concurrent lookups leave nothing running
func TestCheckGoroutineLeaks(t *testing.T) {
	// Get initial goroutine count
	initialGoroutines := runtime.NumGoroutine()

	deps := interfaces.Dependencies{
		HTTPClient: &perfMockHTTPClient{delay: 1 * time.Millisecond, html: perfEntryHTML},
		Logger:     perfLogger(),
	}

	service := lookup.NewLookupService(deps, lookup.Config{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.SearchByWord(context.Background(), "hola")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Wait for goroutines to finish
	time.Sleep(100 * time.Millisecond)

	// Check final goroutine count
	finalGoroutines := runtime.NumGoroutine()
	goroutineGrowth := finalGoroutines - initialGoroutines

	t.Logf("Goroutine count - Initial: %d, Final: %d, Growth: %d",
		initialGoroutines, finalGoroutines, goroutineGrowth)

	// Allow for some growth but flag potential leaks
	assert.LessOrEqual(t, goroutineGrowth, 5,
		"Potential goroutine leak detected")
}

// TestValidateSingleFetchPerLookup ensures a lookup costs exactly one request
func TestValidateSingleFetchPerLookup(t *testing.T) {
	client := &instrumentedHTTPClient{
		client: &perfMockHTTPClient{html: perfEntryHTML},
	}

	deps := interfaces.Dependencies{
		HTTPClient: client,
		Logger:     perfLogger(),
	}

	service := lookup.NewLookupService(deps, lookup.Config{})
	ctx := context.Background()

	const lookups = 20
	for i := 0; i < lookups; i++ {
		result, err := service.SearchByWord(ctx, "hola")
		assert.NoError(t, err)
		assert.Len(t, result.Articles, 1)
	}

	t.Logf("Fetch count - Lookups: %d, Requests: %d", lookups, client.requests)

	assert.Equal(t, lookups, client.requests,
		"Each lookup must cost exactly one upstream request")
}

// instrumentedHTTPClient wraps a client to count upstream requests
type instrumentedHTTPClient struct {
	client   interfaces.HTTPClient
	requests int
	mu       sync.Mutex
}

func (c *instrumentedHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	c.mu.Lock()
	c.requests++
	c.mu.Unlock()

	return c.client.Get(ctx, url)
}
