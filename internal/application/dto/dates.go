package dto

import "time"

// Formatos de fecha del contrato HTTP: entran como yyyy-mm-dd, salen como
// dd/mm/yyyy. La base de datos guarda DATE nativo; el formato vive solo aquí.
const (
	DateInFormat  = "2006-01-02"
	DateOutFormat = "02/01/2006"
)

// ParseDate interpreta una fecha de entrada yyyy-mm-dd.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateInFormat, s)
}

// FormatDate formatea una fecha para la respuesta (dd/mm/yyyy).
func FormatDate(t time.Time) string {
	return t.Format(DateOutFormat)
}

// FormatDatePtr formatea una fecha opcional; nil se serializa como null.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateOutFormat)
	return &s
}
