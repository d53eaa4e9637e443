package observability

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsDispatchCollectors(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()

	metrics.IncSMSSent()
	metrics.IncSMSFailed("Rejected")
	metrics.IncSMSFailed("")
	metrics.ObserveSMSSendDuration(120 * time.Millisecond)
	metrics.ObserveSMSSendDuration(-time.Second)

	if got := testutil.ToFloat64(metrics.smsSentTotal); got != 1 {
		t.Fatalf("sms_sent_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.smsFailedTotal.WithLabelValues("rejected")); got != 1 {
		t.Fatalf("sms_failed_total{reason=rejected} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.smsFailedTotal.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("sms_failed_total{reason=unknown} = %v, want 1", got)
	}
}

func TestMetricsHTTPMiddlewareRecordsRequest(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	app := fiber.New()
	app.Use(metrics.HTTPMiddleware())
	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/livez", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if got := testutil.ToFloat64(metrics.httpRequestsTotal.WithLabelValues("GET", "/livez", "200")); got != 1 {
		t.Fatalf("http_requests_total = %v, want 1", got)
	}
}

func TestMetricsHTTPMiddlewareSkipsMetricsEndpoint(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	app := fiber.New()
	app.Use(metrics.HTTPMiddleware())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}

	if got := testutil.ToFloat64(metrics.httpRequestsTotal.WithLabelValues("GET", "/metrics", "200")); got != 0 {
		t.Fatalf("http_requests_total for /metrics = %v, want 0", got)
	}
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var metrics *Metrics
	metrics.IncSMSSent()
	metrics.IncSMSFailed("transport")
	metrics.ObserveSMSSendDuration(time.Second)

	if metrics.Handler() == nil {
		t.Fatal("Handler() should fall back to the default handler")
	}
}
