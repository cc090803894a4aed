package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// fechaFormateada renders the fecha column the way the frontend displays
// it, so clients never re-parse timestamps.
const fechaFormateada = `TO_CHAR(fecha, 'DD/MM/YYYY HH24:MI') AS fecha_formateada`

const (
	countComments = `SELECT COUNT(*) FROM comentarios;`

	getCommentByID = `SELECT id, nombre, comentario, fecha,
		TO_CHAR(fecha, 'DD/MM/YYYY HH24:MI') AS fecha_formateada
	FROM comentarios
	WHERE id = $1;`

	createComment = `INSERT INTO comentarios (nombre, comentario)
	VALUES ($1, $2)
	RETURNING id, nombre, comentario, fecha,
		TO_CHAR(fecha, 'DD/MM/YYYY HH24:MI') AS fecha_formateada;`

	deleteCommentByID = `DELETE FROM comentarios
	WHERE id = $1
	RETURNING id, nombre, comentario, fecha,
		TO_CHAR(fecha, 'DD/MM/YYYY HH24:MI') AS fecha_formateada;`

	commentStats = `SELECT COUNT(*) AS total,
		TO_CHAR(MIN(fecha), 'DD/MM/YYYY') AS primer_comentario,
		TO_CHAR(MAX(fecha), 'DD/MM/YYYY') AS ultimo_comentario
	FROM comentarios;`

	getReferenceByID = `SELECT id, nombre, titulo, correo, carta, fecha,
		TO_CHAR(fecha, 'DD/MM/YYYY HH24:MI') AS fecha_formateada
	FROM referencias
	WHERE id = $1;`

	createReference = `INSERT INTO referencias (nombre, titulo, correo, carta)
	VALUES ($1, $2, $3, $4)
	RETURNING id, nombre, titulo, correo, carta, fecha,
		TO_CHAR(fecha, 'DD/MM/YYYY HH24:MI') AS fecha_formateada;`
)

// buildListCommentsQuery builds the paginated comment page query.
// page is 1-based; the offset skips the preceding pages.
func buildListCommentsQuery(page, limit int) (string, []any, error) {
	query, args, err := sq.
		Select("id", "nombre", "comentario", "fecha", fechaFormateada).
		From("comentarios").
		OrderBy("fecha DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListReferencesQuery builds the full reference listing, newest
// first. No pagination is exposed for this entity.
func buildListReferencesQuery() (string, []any, error) {
	query, args, err := sq.
		Select("id", "nombre", "titulo", "correo", "carta", "fecha", fechaFormateada).
		From("referencias").
		OrderBy("fecha DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
