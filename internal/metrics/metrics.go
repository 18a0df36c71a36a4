package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "space_booker_bookings_created_total",
		Help: "Total number of bookings persisted",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "space_booker_booking_conflicts_total",
		Help: "Total number of requests rejected because of a time slot conflict",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "space_booker_request_duration_seconds",
		Help:    "Duration of HTTP request processing",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)
