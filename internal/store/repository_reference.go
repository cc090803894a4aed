package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/models"
)

// referenceRepository is the PostgreSQL-backed implementation of
// [ReferenceRepository].
type referenceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReferenceRepository constructs a [ReferenceRepository] backed by the
// provided database connection and logger.
func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating reference repository")
	return &referenceRepository{
		db:     db,
		logger: logger,
	}
}

// List implements [ReferenceRepository].
func (r *referenceRepository) List(ctx context.Context) ([]models.Referencia, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListReferencesQuery()
	if err != nil {
		log.Err(err).Str("func", "*referenceRepository.List").Msg("error building list query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*referenceRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	references := make([]models.Referencia, 0)
	for rows.Next() {
		var ref models.Referencia
		if err := rows.Scan(&ref.ID, &ref.Nombre, &ref.Titulo, &ref.Correo, &ref.Carta, &ref.Fecha, &ref.FechaFormateada); err != nil {
			log.Err(err).Str("func", "*referenceRepository.List").Msg("error scanning reference row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		references = append(references, ref)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*referenceRepository.List").Msg("error iterating reference rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return references, nil
}

// GetByID implements [ReferenceRepository]. A missing row is reported as
// [ErrReferenceNotFound] so the handler can answer 404.
func (r *referenceRepository) GetByID(ctx context.Context, id int64) (models.Referencia, error) {
	log := logger.FromContext(ctx)

	var ref models.Referencia
	row := r.db.QueryRowContext(ctx, getReferenceByID, id)
	if err := row.Scan(&ref.ID, &ref.Nombre, &ref.Titulo, &ref.Correo, &ref.Carta, &ref.Fecha, &ref.FechaFormateada); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Referencia{}, ErrReferenceNotFound
		}
		log.Err(err).Str("func", "*referenceRepository.GetByID").Msg("error scanning reference")
		return models.Referencia{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ref, nil
}

// Create implements [ReferenceRepository]. The INSERT returns all columns
// via a RETURNING clause.
func (r *referenceRepository) Create(ctx context.Context, nombre, titulo, correo, carta string) (models.Referencia, error) {
	log := logger.FromContext(ctx)

	var ref models.Referencia
	row := r.db.QueryRowContext(ctx, createReference, nombre, titulo, correo, carta)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*referenceRepository.Create").Str("pg_code", postgresError(err)).Msg("error inserting reference")
		return models.Referencia{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&ref.ID, &ref.Nombre, &ref.Titulo, &ref.Correo, &ref.Carta, &ref.Fecha, &ref.FechaFormateada); err != nil {
		log.Err(err).Str("func", "*referenceRepository.Create").Msg("error scanning created reference")
		return models.Referencia{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ref, nil
}
