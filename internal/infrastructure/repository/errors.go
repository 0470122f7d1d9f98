package repository

import (
	"errors"
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/lib/pq"
)

// Código de Postgres para violación de llave foránea.
const codigoViolacionFK = "23503"

// traducirErrorPq convierte violaciones de llave foránea en el error de
// conflicto del dominio para que los handlers respondan 409; cualquier otro
// error se devuelve envuelto con el contexto indicado.
func traducirErrorPq(err error, contexto string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == codigoViolacionFK {
		return fmt.Errorf("%s: %w", contexto, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", contexto, err)
}
