package remote

// Config holds configuration for the remote REST API.
type Config struct {
	// BaseURL is the root of the API; resources are fetched from BaseURL/<resource>.
	BaseURL string `mapstructure:"base_url" default:"https://jsonplaceholder.typicode.com"`
	// TimeoutSeconds bounds a single fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

const (
	ResourceUsers = "users"
	ResourcePosts = "posts"
)
