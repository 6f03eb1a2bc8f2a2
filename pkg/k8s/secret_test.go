package k8s_test

import (
	"context"
	"testing"

	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestApplySecretCreates(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()

	err := k8s.ApplySecret(
		context.Background(),
		clientset,
		"arc-runners",
		"github-auth",
		map[string][]byte{"github_token": []byte("ghp_secret")},
	)
	require.NoError(t, err)

	secret, err := k8s.GetSecret(context.Background(), clientset, "arc-runners", "github-auth")
	require.NoError(t, err)
	assert.Equal(t, corev1.SecretTypeOpaque, secret.Type)
	assert.Equal(t, []byte("ghp_secret"), secret.Data["github_token"])
}

func TestApplySecretReplacesData(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset(&corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "github-auth", Namespace: "arc-runners"},
		Data:       map[string][]byte{"github_token": []byte("old")},
	})

	err := k8s.ApplySecret(
		context.Background(),
		clientset,
		"arc-runners",
		"github-auth",
		map[string][]byte{"github_token": []byte("new")},
	)
	require.NoError(t, err)

	secret, err := k8s.GetSecret(context.Background(), clientset, "arc-runners", "github-auth")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), secret.Data["github_token"])
}

func TestGetSecretNotFound(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()

	_, err := k8s.GetSecret(context.Background(), clientset, "arc-runners", "missing")
	require.ErrorIs(t, err, k8s.ErrSecretNotFound)
}

func TestDeleteSecret(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset(&corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: "github-auth", Namespace: "arc-runners"},
	})

	err := k8s.DeleteSecret(context.Background(), clientset, "arc-runners", "github-auth")
	require.NoError(t, err)

	_, err = k8s.GetSecret(context.Background(), clientset, "arc-runners", "github-auth")
	require.ErrorIs(t, err, k8s.ErrSecretNotFound)
}

func TestDeleteSecretNotFound(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset()

	err := k8s.DeleteSecret(context.Background(), clientset, "arc-runners", "missing")
	require.ErrorIs(t, err, k8s.ErrSecretNotFound)
}
