package internal

import (
	"context"
	"log/slog"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"

	"github.com/pongsathonn/ihavefood/common/metrics"
)

// RiderNotifier pushes a pickup offer to candidate riders. Callers treat it
// as fire-and-forget: a failed notification never fails the order, it only
// shrinks the candidate pool.
type RiderNotifier interface {
	NotifyRiders(ctx context.Context, riders []*pb.Rider, pickup *PickupInfo) error
}

// LogNotifier is the shipped RiderNotifier: it logs each offer instead of
// pushing it.
//
// TODO: replace with the push-notification channel once the rider app
// exposes one.
type LogNotifier struct {
	log     *slog.Logger
	metrics *metrics.DeliveryMetrics
}

func NewLogNotifier(log *slog.Logger, m *metrics.DeliveryMetrics) *LogNotifier {
	return &LogNotifier{log: log, metrics: m}
}

func (n *LogNotifier) NotifyRiders(ctx context.Context, riders []*pb.Rider, pickup *PickupInfo) error {
	for _, rider := range riders {
		n.log.Info("notified rider",
			"rider_id", rider.GetRiderId(),
			"pickup_code", pickup.PickupCode,
		)
		n.metrics.RidersNotified.Inc()
	}
	return nil
}
