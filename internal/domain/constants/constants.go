// Package constants holds shared domain-level constants.
package constants

// Deployment environments.
const (
	EnvDevelop = "develop"
)

// Pub/Sub provider types for event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
