package constant

// Remote collaborators. Each one can be overridden through the configuration.
const (
	// DefaultAPIBaseURL is the remote anime API queried for catalog, detail and stream data.
	DefaultAPIBaseURL = "http://localhost:3000"

	// DefaultProxyURL is the video proxy service that proxied stream URLs point at.
	DefaultProxyURL = "http://localhost:8080"

	// DefaultEmbedURL is the iframe player template. The first verb is the embed id, the second the category.
	DefaultEmbedURL = "https://megaplay.buzz/stream/s-2/%s/%s"

	// PlaceholderImage is shown for entries the API returns without a poster.
	PlaceholderImage = "https://picsum.photos/300/450?grayscale"

	// Repository is the GitHub slug used for release checks.
	Repository = "aizenverse/aizen"
)
