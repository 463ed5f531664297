package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the business counters. A nil *Metrics records nothing, which
// is what tests use.
type Metrics struct {
	ordersCreated    metric.Int64Counter
	paymentsRecorded metric.Int64Counter
	pixRequested     metric.Int64Counter
}

// NewMetrics registers the counters on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	ordersCreated, err := meter.Int64Counter("orders_created_total",
		metric.WithDescription("Orders created from a cart"))
	if err != nil {
		return nil, err
	}
	paymentsRecorded, err := meter.Int64Counter("payments_recorded_total",
		metric.WithDescription("Payment submissions stored"))
	if err != nil {
		return nil, err
	}
	pixRequested, err := meter.Int64Counter("pix_transactions_total",
		metric.WithDescription("PIX transactions requested from the gateway"))
	if err != nil {
		return nil, err
	}
	return &Metrics{
		ordersCreated:    ordersCreated,
		paymentsRecorded: paymentsRecorded,
		pixRequested:     pixRequested,
	}, nil
}

func (m *Metrics) OrderCreated(ctx context.Context, paymentMethod string) {
	if m == nil {
		return
	}
	m.ordersCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("payment_method", paymentMethod)))
}

func (m *Metrics) PaymentRecorded(ctx context.Context, paymentMethod string) {
	if m == nil {
		return
	}
	m.paymentsRecorded.Add(ctx, 1, metric.WithAttributes(attribute.String("payment_method", paymentMethod)))
}

// PixRequested counts gateway calls, split by whether the gateway accepted them.
func (m *Metrics) PixRequested(ctx context.Context, ok bool) {
	if m == nil {
		return
	}
	m.pixRequested.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", ok)))
}
