package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/models"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository]. It is stateless apart from the shared pool handle.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// List implements [CommentRepository]. It runs the squirrel-built page
// query followed by a COUNT(*) and derives totalPages as
// ceil(total/limit).
func (r *commentRepository) List(ctx context.Context, page, limit int) (models.CommentPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCommentsQuery(page, limit)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.List").Msg("error building list query")
		return models.CommentPage{}, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.List").Msg("error executing list query")
		return models.CommentPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, limit)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Comentario, &c.Fecha, &c.FechaFormateada); err != nil {
			log.Err(err).Str("func", "*commentRepository.List").Msg("error scanning comment row")
			return models.CommentPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.List").Msg("error iterating comment rows")
		return models.CommentPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countComments).Scan(&total); err != nil {
		log.Err(err).Str("func", "*commentRepository.List").Msg("error counting comments")
		return models.CommentPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.CommentPage{
		Comments:      comments,
		TotalPages:    int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage:   page,
		TotalComments: total,
	}, nil
}

// GetByID implements [CommentRepository]. A missing row is reported as
// [ErrCommentNotFound] so the handler can answer 404.
func (r *commentRepository) GetByID(ctx context.Context, id int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var c models.Comment
	row := r.db.QueryRowContext(ctx, getCommentByID, id)
	if err := row.Scan(&c.ID, &c.Nombre, &c.Comentario, &c.Fecha, &c.FechaFormateada); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.GetByID").Msg("error scanning comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// Create implements [CommentRepository]. The INSERT returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the new row, fecha included.
func (r *commentRepository) Create(ctx context.Context, nombre, comentario string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var c models.Comment
	row := r.db.QueryRowContext(ctx, createComment, nombre, comentario)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.Create").Str("pg_code", postgresError(err)).Msg("error inserting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&c.ID, &c.Nombre, &c.Comentario, &c.Fecha, &c.FechaFormateada); err != nil {
		log.Err(err).Str("func", "*commentRepository.Create").Msg("error scanning created comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// DeleteByID implements [CommentRepository]. DELETE ... RETURNING hands
// back the removed row; no row means [ErrCommentNotFound].
func (r *commentRepository) DeleteByID(ctx context.Context, id int64) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var c models.Comment
	row := r.db.QueryRowContext(ctx, deleteCommentByID, id)
	if err := row.Scan(&c.ID, &c.Nombre, &c.Comentario, &c.Fecha, &c.FechaFormateada); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, ErrCommentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.DeleteByID").Msg("error deleting comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

// Stats implements [CommentRepository]. MIN/MAX over an empty table scan
// as NULL, which maps to nil pointers in the result.
func (r *commentRepository) Stats(ctx context.Context) (models.CommentStats, error) {
	log := logger.FromContext(ctx)

	var stats models.CommentStats
	var primer, ultimo sql.NullString

	row := r.db.QueryRowContext(ctx, commentStats)
	if err := row.Scan(&stats.Total, &primer, &ultimo); err != nil {
		log.Err(err).Str("func", "*commentRepository.Stats").Msg("error scanning comment stats")
		return models.CommentStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if primer.Valid {
		stats.PrimerComentario = &primer.String
	}
	if ultimo.Valid {
		stats.UltimoComentario = &ultimo.String
	}

	return stats, nil
}
