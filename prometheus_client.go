package main

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/weaveworks/common/user"

	prom "github.com/prometheus/client_golang/api"
)

// prometheusClient is a specialization of the default prom.Client that extracts
// the orgID header from the given context, if any, and forwards it to the
// querier.
type prometheusClient struct {
	client prom.Client
}

var _ prom.Client = &prometheusClient{}

func newPrometheusClient(baseURL string) (*prometheusClient, error) {
	client, err := prom.NewClient(prom.Config{
		Address: baseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "prometheus client")
	}

	return &prometheusClient{
		client: client,
	}, nil
}

func (c *prometheusClient) URL(ep string, args map[string]string) *url.URL {
	return c.client.URL(ep, args)
}

func (c *prometheusClient) Do(ctx context.Context, r *http.Request) (*http.Response, []byte, error) {
	if err := user.InjectOrgIDIntoHTTPRequest(ctx, r); err != nil && err != user.ErrNoOrgID {
		return nil, nil, errors.Wrap(err, "inject OrgID")
	}

	return c.client.Do(ctx, r)
}
