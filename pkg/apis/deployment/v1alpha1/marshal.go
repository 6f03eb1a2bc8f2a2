package v1alpha1

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Marshal serializes the Deployment to YAML.
func (d *Deployment) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal deployment: %w", err)
	}

	return data, nil
}

// Unmarshal parses a YAML document into a Deployment and applies defaults.
func Unmarshal(data []byte) (*Deployment, error) {
	deployment := &Deployment{}

	err := yaml.Unmarshal(data, deployment)
	if err != nil {
		return nil, fmt.Errorf("unmarshal deployment: %w", err)
	}

	deployment.SetDefaults()

	return deployment, nil
}
