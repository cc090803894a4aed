package models

// Response is the uniform envelope returned by every endpoint. Success
// responses set Message and Data; error responses set Error. Count is
// populated only by list endpoints that report a row count.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// CommentListResponse is the envelope of GET /api/comments. It inlines
// the page contents and pagination totals at the top level, the shape
// the frontend paginator consumes.
type CommentListResponse struct {
	Success         bool      `json:"success"`
	Message         string    `json:"message"`
	Comments        []Comment `json:"comments"`
	TotalPages      int       `json:"totalPages"`
	CurrentPage     int       `json:"currentPage"`
	TotalComments   int       `json:"totalComments"`
	CommentsPerPage int       `json:"commentsPerPage"`
}

// NotFoundResponse is returned for unmatched routes. It lists the
// available endpoints as a discoverability aid.
type NotFoundResponse struct {
	Success            bool           `json:"success"`
	Error              string         `json:"error"`
	Suggestion         string         `json:"suggestion"`
	AvailableEndpoints map[string]any `json:"available_endpoints"`
}

// HomeResponse is the service metadata payload of GET /.
type HomeResponse struct {
	Status        string         `json:"status"`
	Message       string         `json:"message"`
	Version       string         `json:"version"`
	Documentation string         `json:"documentation"`
	Environment   string         `json:"environment"`
	Timestamp     string         `json:"timestamp"`
	Endpoints     map[string]any `json:"endpoints"`
}

// HealthResponse is the payload of GET /api/health.
type HealthResponse struct {
	Status      string          `json:"status"`
	Message     string          `json:"message,omitempty"`
	Error       string          `json:"error,omitempty"`
	Timestamp   string          `json:"timestamp"`
	Uptime      float64         `json:"uptime,omitempty"`
	Database    *DatabaseHealth `json:"database,omitempty"`
	Environment string          `json:"environment,omitempty"`
	Version     string          `json:"version,omitempty"`
}

// DatabaseHealth describes the store connectivity inside a health
// response.
type DatabaseHealth struct {
	Status      string `json:"status"`
	Type        string `json:"type"`
	Environment string `json:"environment,omitempty"`
}
