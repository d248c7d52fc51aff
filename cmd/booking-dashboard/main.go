// booking-dashboard generates the booking service Grafana dashboard
// and prints it, wrapped in an import envelope, on stdout:
//
//	booking-dashboard > dashboards/booking_service.json
//
// With -grafana.url it pushes the dashboard straight to a Grafana
// instance instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jorzel/booking-dashboards/dashboard"
	"github.com/jorzel/booking-dashboards/grafana"
)

func main() {
	rangeSelector := flag.String("range", dashboard.DefaultRange, "selector for range vectors")
	grafanaURL := flag.String("grafana.url", "", "push the dashboard to this Grafana base URL instead of printing it")
	grafanaKey := flag.String("grafana.api-key", "", "API key used when pushing to Grafana")
	timeout := flag.Duration("timeout", 10*time.Second, "timeout when pushing to Grafana")

	flag.Parse()

	if err := dashboard.Init(); err != nil {
		fatal(err)
	}

	board, err := dashboard.GetDashboardByID(dashboard.BookingServiceID, &dashboard.Config{
		Range: *rangeSelector,
	})
	if err != nil {
		fatal(err)
	}

	request := grafana.NewUploadRequest(board)

	if *grafanaURL != "" {
		client := grafana.NewClient(grafana.Config{
			URL:     *grafanaURL,
			APIKey:  *grafanaKey,
			Timeout: *timeout,
		})
		ctx, cancel := context.WithTimeout(context.Background(), *timeout+time.Second)
		defer cancel()
		resp, err := client.ImportDashboard(ctx, request)
		if err != nil {
			fatal(err)
		}
		fmt.Fprintf(os.Stderr, "imported dashboard %s\n", resp.UID)
		return
	}

	if err := request.Encode(os.Stdout); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
