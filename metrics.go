package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/model"
)

var (
	inProcessCacheRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "booking",
		Name:      "dashboard_cache_requests_total",
		Help:      "Number of lookups in the in-process metric names cache.",
	})
	inProcessCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "booking",
		Name:      "dashboard_cache_hits_total",
		Help:      "Number of hits in the in-process metric names cache.",
	})
	inProcessCacheSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "booking",
		Name:      "dashboard_cache_entries",
		Help:      "Number of entries in the in-process metric names cache.",
	})
)

func init() {
	prometheus.MustRegister(
		inProcessCacheRequests,
		inProcessCacheHits,
		inProcessCacheSize,
	)
}

// getMetricNames returns the names of the metrics the booking service
// currently exposes, per the configured series selector.
func (api *API) getMetricNames(ctx context.Context, orgID string, startTime, endTime time.Time) ([]string, error) {
	cacheKey := "M/" + orgID
	if api.cache != nil {
		inProcessCacheRequests.Inc()
		// NOTE we are not using startTime and endTime in the cache key,
		// which is ok for now because getMetrics() doesn't use them.
		if cached, err := api.cache.GetIFPresent(cacheKey); err == nil {
			inProcessCacheHits.Inc()
			return cached.([]string), nil
		}
	}

	data, err := api.getMetrics(ctx, []string{api.cfg.prometheus.match}, startTime, endTime)
	if err == nil && api.cache != nil {
		api.cache.Set(cacheKey, data)
		inProcessCacheSize.Set(float64(api.cache.Len())) // Len() is expensive, but should be less so than Prom query
	}
	return data, err
}

// Given a list of match clauses like {job="booking-service"}, return
// the metric names that match any of them.
func (api *API) getMetrics(ctx context.Context, queries []string, startTime, endTime time.Time) ([]string, error) {
	log.WithFields(log.Fields{"queries": queries, "from": startTime, "to": endTime}).Debug("get series")
	names := make(map[string]struct{})

	endTime = time.Now() // Query() doesn't support looking back in time

	for _, q := range queries {
		// 'count' serves to reduce the result to unique names.
		countQuery := "count by(__name__)(" + q + ")"
		value, err := api.prometheus.Query(ctx, countQuery, endTime)
		if err != nil {
			return nil, err
		}
		vector, ok := value.(model.Vector)
		if !ok {
			log.Error("unexpected result returned from Prometheus")
			return nil, errInvalidParameter
		}
		for _, sample := range vector {
			names[string(sample.Metric[model.MetricNameLabel])] = struct{}{}
		}
	}

	var metrics []string
	for key := range names {
		metrics = append(metrics, key)
	}
	return metrics, nil
}
