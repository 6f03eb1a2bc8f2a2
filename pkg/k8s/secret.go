package k8s

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// ApplySecret creates the named Opaque Secret with the given data, or
// replaces the data of an existing Secret of the same name.
func ApplySecret(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	name string,
	data map[string][]byte,
) error {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Type: corev1.SecretTypeOpaque,
		Data: data,
	}

	_, err := clientset.CoreV1().Secrets(namespace).Create(ctx, secret, metav1.CreateOptions{})
	if err == nil {
		return nil
	}

	if !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("create secret: %w", err)
	}

	existing, err := clientset.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("get secret for update: %w", err)
	}

	existing.Type = corev1.SecretTypeOpaque
	existing.Data = data

	_, err = clientset.CoreV1().Secrets(namespace).Update(ctx, existing, metav1.UpdateOptions{})
	if err != nil {
		return fmt.Errorf("update secret: %w", err)
	}

	return nil
}

// GetSecret fetches the named Secret. Returns ErrSecretNotFound when absent.
func GetSecret(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	name string,
) (*corev1.Secret, error) {
	secret, err := clientset.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrSecretNotFound, namespace, name)
		}

		return nil, fmt.Errorf("get secret: %w", err)
	}

	return secret, nil
}

// DeleteSecret removes the named Secret. Returns ErrSecretNotFound when the
// Secret did not exist.
func DeleteSecret(
	ctx context.Context,
	clientset kubernetes.Interface,
	namespace string,
	name string,
) error {
	err := clientset.CoreV1().Secrets(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return fmt.Errorf("%w: %s/%s", ErrSecretNotFound, namespace, name)
		}

		return fmt.Errorf("delete secret: %w", err)
	}

	return nil
}
