package readiness

import (
	"context"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// WaitForDeploymentReady polls until the named Deployment has at least one
// replica and all desired replicas report ready. Not-found errors keep
// polling, since the Deployment may not have been created yet right after a
// chart install.
func WaitForDeploymentReady(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	name string,
	timeout time.Duration,
) error {
	return PollForReadiness(ctx, timeout, func(ctx context.Context) (bool, error) {
		deployment, err := clientset.AppsV1().
			Deployments(namespace).
			Get(ctx, name, metav1.GetOptions{})
		if err != nil {
			if apierrors.IsNotFound(err) {
				return false, nil
			}

			return false, err
		}

		desired := int32(1)
		if deployment.Spec.Replicas != nil {
			desired = *deployment.Spec.Replicas
		}

		return desired > 0 && deployment.Status.ReadyReplicas >= desired, nil
	})
}
