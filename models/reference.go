package models

import "time"

// Referencia is a testimonial/recommendation letter persisted in the
// "referencias" table.
//
// Unlike Comment there is no delete operation for this entity; rows are
// only ever created and read.
type Referencia struct {
	// ID is the store-generated primary key. Immutable.
	ID int64 `json:"id" db:"id"`

	// Nombre is the author's display name. At most 100 characters.
	Nombre string `json:"nombre" db:"nombre"`

	// Titulo is the author's job title or relationship to the site
	// owner. Required; no maximum length is enforced.
	Titulo string `json:"titulo" db:"titulo"`

	// Correo is the author's contact e-mail. Required; only presence is
	// validated, not format.
	Correo string `json:"correo" db:"correo"`

	// Carta is the recommendation letter body. At most 1000 characters.
	Carta string `json:"carta" db:"carta"`

	// Fecha is the insertion timestamp, assigned by the database.
	Fecha time.Time `json:"fecha_original" db:"fecha"`

	// FechaFormateada is Fecha rendered as "DD/MM/YYYY HH24:MI".
	FechaFormateada string `json:"fecha_formateada" db:"fecha_formateada"`
}
