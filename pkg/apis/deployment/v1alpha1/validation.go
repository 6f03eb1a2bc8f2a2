package v1alpha1

import "fmt"

// Validate checks the Deployment for configuration errors. It assumes
// SetDefaults has been applied and reports the first problem found.
func (d *Deployment) Validate() error {
	err := d.Spec.Cluster.validate()
	if err != nil {
		return err
	}

	if !d.Spec.Auth.Method.Valid() {
		return fmt.Errorf("%w: %q", ErrAuthMethodUnknown, d.Spec.Auth.Method)
	}

	for i := range d.Spec.Runners {
		err = d.Spec.Runners[i].validate()
		if err != nil {
			return fmt.Errorf("spec.runners[%d]: %w", i, err)
		}
	}

	return nil
}

func (c *ClusterSpec) validate() error {
	if c.Project == "" {
		return ErrClusterProjectRequired
	}

	if c.Location == "" {
		return ErrClusterLocationRequired
	}

	if c.Name == "" {
		return ErrClusterNameRequired
	}

	return nil
}

func (s *ScaleSetSpec) validate() error {
	if s.Name == "" {
		return ErrRunnerNameRequired
	}

	if s.GitHubConfigURL == "" {
		return ErrRunnerConfigURLRequired
	}

	if s.MaxRunners > 0 && s.MinRunners > s.MaxRunners {
		return fmt.Errorf("%w: min %d, max %d", ErrRunnerBoundsInvalid, s.MinRunners, s.MaxRunners)
	}

	return nil
}
