package usecase

const (
	// DefaultPageSize is the page size used when the caller does not specify one.
	DefaultPageSize = 20

	// MaxPageSize caps the page size for listing endpoints.
	MaxPageSize = 100
)
