package k8s

import (
	"context"
	"fmt"
	"io"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// PodSummary is a condensed view of a pod for status output.
type PodSummary struct {
	Name     string
	Phase    string
	Ready    string
	Restarts int32
	Age      time.Duration
}

// ListPods lists pods in a namespace matching the label selector and returns
// them as summaries. An empty selector matches all pods in the namespace.
func ListPods(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	selector string,
) ([]PodSummary, error) {
	podList, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: selector,
	})
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	summaries := make([]PodSummary, 0, len(podList.Items))
	for i := range podList.Items {
		summaries = append(summaries, summarizePod(&podList.Items[i], time.Now()))
	}

	return summaries, nil
}

func summarizePod(pod *corev1.Pod, now time.Time) PodSummary {
	ready := 0
	restarts := int32(0)

	for _, status := range pod.Status.ContainerStatuses {
		if status.Ready {
			ready++
		}

		restarts += status.RestartCount
	}

	return PodSummary{
		Name:     pod.Name,
		Phase:    string(pod.Status.Phase),
		Ready:    fmt.Sprintf("%d/%d", ready, len(pod.Spec.Containers)),
		Restarts: restarts,
		Age:      now.Sub(pod.CreationTimestamp.Time).Truncate(time.Second),
	}
}

// LogOptions controls pod log streaming.
type LogOptions struct {
	// Container selects a container within the pod; empty selects the only
	// container or the pod's default.
	Container string
	// Follow keeps the stream open as new log lines arrive.
	Follow bool
	// TailLines limits output to the last N lines. Zero streams everything.
	TailLines int64
}

// StreamPodLogs streams logs from the newest pod matching the label selector
// into the writer. Returns ErrNoPodsFound when the selector matches nothing.
func StreamPodLogs(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	selector string,
	opts LogOptions,
	writer io.Writer,
) error {
	podName, err := newestPodName(ctx, clientset, namespace, selector)
	if err != nil {
		return err
	}

	logOptions := &corev1.PodLogOptions{
		Container: opts.Container,
		Follow:    opts.Follow,
	}
	if opts.TailLines > 0 {
		logOptions.TailLines = &opts.TailLines
	}

	stream, err := clientset.CoreV1().Pods(namespace).GetLogs(podName, logOptions).Stream(ctx)
	if err != nil {
		return fmt.Errorf("open log stream for pod %q: %w", podName, err)
	}

	defer func() { _ = stream.Close() }()

	_, err = io.Copy(writer, stream)
	if err != nil {
		return fmt.Errorf("stream logs for pod %q: %w", podName, err)
	}

	return nil
}

// newestPodName returns the most recently created pod matching the selector.
func newestPodName(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	selector string,
) (string, error) {
	podList, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: selector,
	})
	if err != nil {
		return "", fmt.Errorf("list pods: %w", err)
	}

	if len(podList.Items) == 0 {
		return "", fmt.Errorf("%w: namespace %q selector %q", ErrNoPodsFound, namespace, selector)
	}

	newest := podList.Items[0]
	for _, pod := range podList.Items[1:] {
		if pod.CreationTimestamp.After(newest.CreationTimestamp.Time) {
			newest = pod
		}
	}

	return newest.Name, nil
}
