package readiness_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arcops/arcctl/pkg/k8s/readiness"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func int32Ptr(v int32) *int32 { return &v }

func TestPollForReadinessImmediateSuccess(t *testing.T) {
	t.Parallel()

	err := readiness.PollForReadiness(
		context.Background(),
		time.Second,
		func(_ context.Context) (bool, error) { return true, nil },
	)
	require.NoError(t, err)
}

func TestPollForReadinessAbortsOnFatalError(t *testing.T) {
	t.Parallel()

	fatal := errors.New("kaboom")

	err := readiness.PollForReadiness(
		context.Background(),
		time.Second,
		func(_ context.Context) (bool, error) { return false, fatal },
	)
	require.ErrorIs(t, err, fatal)
}

func TestPollForReadinessTimesOut(t *testing.T) {
	t.Parallel()

	err := readiness.PollForReadiness(
		context.Background(),
		50*time.Millisecond,
		func(_ context.Context) (bool, error) { return false, nil },
	)
	require.Error(t, err)
}

func TestWaitForDeploymentReady(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset(&appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "arc-gha-rs-controller",
			Namespace: "arc-systems",
		},
		Spec: appsv1.DeploymentSpec{Replicas: int32Ptr(1)},
		Status: appsv1.DeploymentStatus{
			ReadyReplicas: 1,
		},
	})

	err := readiness.WaitForDeploymentReady(
		context.Background(),
		clientset,
		"arc-systems",
		"arc-gha-rs-controller",
		time.Second,
	)
	require.NoError(t, err)
}

func TestWaitForDeploymentReadyTimesOutWhenMissing(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()

	err := readiness.WaitForDeploymentReady(
		context.Background(),
		clientset,
		"arc-systems",
		"missing",
		50*time.Millisecond,
	)
	require.Error(t, err)
}
