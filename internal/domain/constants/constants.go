// Package constants contains identifiers shared across configuration and infrastructure.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Object storage providers.
const (
	StorageProviderMinio = "minio"
	StorageProviderBlob  = "blob"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypeNotification = "notification"
	EventTypeEmail        = "email"
)

// Message attribute keys set by the publisher and read by the worker.
const (
	AttributeEventType = "event_type"
	AttributeRequestID = "request_id"
)

// ListingImagesBucket is the bucket listing photos are stored in.
const ListingImagesBucket = "listing-images"

// TempEmailDomain builds a synthetic address for contacts that only left a phone number.
const TempEmailDomain = "temp.enginex.ma"
