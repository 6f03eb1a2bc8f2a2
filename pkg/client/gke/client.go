// Package gke resolves Google Kubernetes Engine clusters and writes
// kubeconfig credentials for them, covering what
// `gcloud container clusters get-credentials` does.
package gke

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/container/v1"
	"google.golang.org/api/option"
)

var (
	// ErrClusterEndpointMissing is returned when the API reports a cluster
	// without a reachable endpoint, e.g. while it is still provisioning.
	ErrClusterEndpointMissing = errors.New("gke: cluster has no endpoint")
	// ErrClusterCAMissing is returned when the API reports a cluster without
	// CA certificate data.
	ErrClusterCAMissing = errors.New("gke: cluster has no CA certificate")
)

// ClusterInfo captures the connection details of a GKE cluster.
type ClusterInfo struct {
	Name          string
	Location      string
	Endpoint      string
	CACertificate []byte
}

// Interface defines the subset of GKE functionality required by arcctl.
type Interface interface {
	GetCluster(ctx context.Context, project, location, name string) (*ClusterInfo, error)
}

// Client resolves clusters through the GKE API using Application Default
// Credentials.
type Client struct {
	service *container.Service
}

var _ Interface = (*Client)(nil)

// NewClient creates a GKE client authenticated with Application Default
// Credentials.
func NewClient(ctx context.Context) (*Client, error) {
	creds, err := google.FindDefaultCredentials(ctx, container.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf(
			"find google application default credentials (run `gcloud auth application-default login`): %w",
			err,
		)
	}

	service, err := container.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create container service: %w", err)
	}

	return &Client{service: service}, nil
}

// GetCluster fetches a cluster's endpoint and CA certificate.
func (c *Client) GetCluster(
	ctx context.Context,
	project, location, name string,
) (*ClusterInfo, error) {
	fullName := fmt.Sprintf("projects/%s/locations/%s/clusters/%s", project, location, name)

	cluster, err := c.service.Projects.Locations.Clusters.Get(fullName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get cluster %q: %w", fullName, err)
	}

	return clusterToInfo(cluster)
}

func clusterToInfo(cluster *container.Cluster) (*ClusterInfo, error) {
	if cluster.Endpoint == "" {
		return nil, fmt.Errorf("%w: %s", ErrClusterEndpointMissing, cluster.Name)
	}

	if cluster.MasterAuth == nil || cluster.MasterAuth.ClusterCaCertificate == "" {
		return nil, fmt.Errorf("%w: %s", ErrClusterCAMissing, cluster.Name)
	}

	caData, err := base64.StdEncoding.DecodeString(cluster.MasterAuth.ClusterCaCertificate)
	if err != nil {
		return nil, fmt.Errorf("decode cluster CA certificate: %w", err)
	}

	return &ClusterInfo{
		Name:          cluster.Name,
		Location:      cluster.Location,
		Endpoint:      cluster.Endpoint,
		CACertificate: caData,
	}, nil
}
