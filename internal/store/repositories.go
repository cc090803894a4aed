package store

import "github.com/gserrano-dev/portfolio-api/internal/logger"

// Repositories bundles the per-entity data accessors that share one pool
// handle.
type Repositories struct {
	Comments   CommentRepository
	References ReferenceRepository
}

// NewRepositories constructs every repository on top of the shared
// database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Comments:   NewCommentRepository(db, logger),
		References: NewReferenceRepository(db, logger),
	}
}
