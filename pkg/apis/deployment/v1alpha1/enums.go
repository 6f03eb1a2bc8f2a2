package v1alpha1

// AuthMethod enumerates the supported GitHub authentication secret shapes.
type AuthMethod string

const (
	// AuthMethodPAT authenticates runners with a personal access token
	// (secret key github_token).
	AuthMethodPAT AuthMethod = "pat"
	// AuthMethodGitHubApp authenticates runners with a GitHub App
	// (secret keys github_app_id, github_app_installation_id,
	// github_app_private_key).
	AuthMethodGitHubApp AuthMethod = "github-app"
)

// Valid reports whether the method is one of the supported values.
func (m AuthMethod) Valid() bool {
	switch m {
	case AuthMethodPAT, AuthMethodGitHubApp:
		return true
	default:
		return false
	}
}

// ValidAuthMethods returns all supported auth method values.
func ValidAuthMethods() []AuthMethod {
	return []AuthMethod{AuthMethodPAT, AuthMethodGitHubApp}
}
