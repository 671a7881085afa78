package paginator

const (
	// DefaultPage is the default page number when invalid page is provided.
	DefaultPage = 1
	// DefaultLimit is the default number of items per page when invalid limit is provided.
	DefaultLimit = 10
	// MaxLimit is the largest page size the search engine accepts.
	MaxLimit = 1000
)
