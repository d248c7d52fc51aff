package main

import (
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/weaveworks/common/logging"
	"github.com/weaveworks/common/server"

	"github.com/jorzel/booking-dashboards/dashboard"
)

type config struct {
	prometheus struct {
		uri     string
		match   string
		timeout time.Duration
	}
	grafana struct {
		url     string
		apiKey  string
		timeout time.Duration
	}
	cache struct {
		size       int
		expiration time.Duration
	}
	server server.Config
}

func (c *config) registerFlags(f *flag.FlagSet) {
	f.StringVar(&c.prometheus.uri, "prometheus.uri", "http://prometheus.monitoring.svc.cluster.local", "Prometheus server URI")
	f.StringVar(&c.prometheus.match, "prometheus.match", `{job="booking-service"}`, "series selector scoping metric discovery to the booking service")
	f.DurationVar(&c.prometheus.timeout, "prometheus.timeout", 10*time.Second, "Timeout when talking to the prometheus API")
	f.StringVar(&c.grafana.url, "grafana.url", "", "Grafana base URL dashboards are pushed to (empty disables pushing)")
	f.StringVar(&c.grafana.apiKey, "grafana.api-key", "", "API key used when pushing to Grafana")
	f.DurationVar(&c.grafana.timeout, "grafana.timeout", 10*time.Second, "Timeout when talking to the Grafana API")
	f.IntVar(&c.cache.size, "cache.size", 1024, "Maximum number of entries of the metric names cache (0 disables caching)")
	f.DurationVar(&c.cache.expiration, "cache.expiration", 2*time.Minute, "Expiration of the metric names cache entries")

	c.server.RegisterFlags(f)
}

func main() {
	cfg := &config{}
	cfg.registerFlags(flag.CommandLine)
	flag.Parse()
	cfg.server.MetricsNamespace = "booking"

	if err := logging.Setup(cfg.server.LogLevel.String()); err != nil {
		log.Fatalf("error initializing logging: %v", err)
	}
	cfg.server.Log = logging.Logrus(log.StandardLogger())

	server, err := server.New(cfg.server)
	if err != nil {
		log.Fatalf("error initializing server: %v", err)
	}
	defer server.Shutdown()

	if err := dashboard.Init(); err != nil {
		log.Fatalf("error initializing dashboards: %v", err)
	}

	api, err := newAPI(cfg)
	if err != nil {
		log.Fatalf("error initializing API: %v", err)
	}
	api.registerRoutes(server.HTTP)

	server.Run()
}
