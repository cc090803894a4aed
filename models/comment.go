package models

import "time"

// Comment is a visitor comment persisted in the "comentarios" table.
// Wire names stay in Spanish to match the table columns and the payloads
// the frontend already consumes.
type Comment struct {
	// ID is the store-generated primary key. Immutable.
	ID int64 `json:"id" db:"id"`

	// Nombre is the display name of the comment author. At most 100
	// characters, enforced before the row is inserted.
	Nombre string `json:"nombre" db:"nombre"`

	// Comentario is the comment body. At most 1000 characters.
	Comentario string `json:"comentario" db:"comentario"`

	// Fecha is the insertion timestamp, assigned by the database on
	// insert. Clients never supply it.
	Fecha time.Time `json:"fecha_original" db:"fecha"`

	// FechaFormateada is Fecha rendered as "DD/MM/YYYY HH24:MI" by the
	// query (TO_CHAR), ready for display.
	FechaFormateada string `json:"fecha_formateada" db:"fecha_formateada"`
}

// CommentPage is one page of comments together with the pagination
// totals derived from COUNT(*).
type CommentPage struct {
	Comments      []Comment `json:"comments"`
	TotalPages    int       `json:"totalPages"`
	CurrentPage   int       `json:"currentPage"`
	TotalComments int       `json:"totalComments"`
}

// CommentStats holds the aggregate numbers shown on the admin dashboard
// and used by the health check as a liveness probe.
//
// PrimerComentario and UltimoComentario are nil when the table is empty
// (MIN/MAX over zero rows).
type CommentStats struct {
	Total            int64   `json:"total"`
	PrimerComentario *string `json:"primer_comentario"`
	UltimoComentario *string `json:"ultimo_comentario"`
}
