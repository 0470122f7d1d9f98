package repository

import (
	"database/sql"
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type detalleRepository struct {
	db *sql.DB
}

// NewDetalleRepository crea una nueva instancia del repositorio de detalles
func NewDetalleRepository(db *sql.DB) domain.ReservaDetalleRepository {
	return &detalleRepository{db: db}
}

const consultaDetalleResuelto = `
	SELECT
		d.detail_id,
		d.reservation_id,
		d.room_id,
		d.person_id,
		d.check_in,
		d.check_out,
		h.number,
		p.name,
		p.first_surname,
		p.second_surname
	FROM reservation_detail d
	INNER JOIN room h ON h.room_id = d.room_id
	INNER JOIN person p ON p.person_id = d.person_id
`

// escanearDetalle llena un detalle desde una fila de consultaDetalleResuelto
func escanearDetalle(scan func(dest ...any) error, detalle *domain.ReservaDetalle) error {
	var nombre, primerApellido string
	var segundoApellido sql.NullString

	err := scan(
		&detalle.ID,
		&detalle.ReservaID,
		&detalle.HabitacionID,
		&detalle.PersonID,
		&detalle.FechaEntrada,
		&detalle.FechaSalida,
		&detalle.NumeroHabitacion,
		&nombre,
		&primerApellido,
		&segundoApellido,
	)
	if err != nil {
		return err
	}

	persona := domain.Person{Name: nombre, FirstSurname: primerApellido}
	if segundoApellido.Valid {
		persona.SecondSurname = &segundoApellido.String
	}
	detalle.NombreHuesped = persona.NombreCompleto()
	return nil
}

// CreateBulk inserta todos los detalles y aplica la transición Free→Reserved
// sobre cada habitación indicada, dentro de una sola transacción. La
// transición es condicional: si la habitación ya no está Free, no se afecta
// ninguna fila y la corrida completa se revierte con
// domain.ErrHabitacionNoDisponible.
func (r *detalleRepository) CreateBulk(reservaID uuid.UUID, detalles []domain.ReservaDetalle, habitaciones []uuid.UUID) ([]domain.ReservaDetalle, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO reservation_detail (
			detail_id,
			reservation_id,
			room_id,
			person_id,
			check_in,
			check_out
		) VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return nil, fmt.Errorf("error al preparar statement: %w", err)
	}
	defer stmt.Close()

	ids := make([]uuid.UUID, 0, len(detalles))
	for i := range detalles {
		detalles[i].ID = uuid.New()
		detalles[i].ReservaID = reservaID

		_, err := stmt.Exec(
			detalles[i].ID,
			reservaID,
			detalles[i].HabitacionID,
			detalles[i].PersonID,
			detalles[i].FechaEntrada,
			detalles[i].FechaSalida,
		)
		if err != nil {
			return nil, traducirErrorPq(err, fmt.Sprintf("error al crear detalle %d", i+1))
		}
		ids = append(ids, detalles[i].ID)
	}

	for _, habitacionID := range habitaciones {
		if err := marcarHabitacionReservada(tx, habitacionID); err != nil {
			return nil, err
		}
	}

	// Releer las filas insertadas con los campos resueltos, aún dentro de
	// la transacción.
	rows, err := tx.Query(consultaDetalleResuelto+` WHERE d.detail_id = ANY($1) ORDER BY d.check_in, h.number`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error al leer detalles creados: %w", err)
	}
	defer rows.Close()

	creados := make([]domain.ReservaDetalle, 0, len(ids))
	for rows.Next() {
		var detalle domain.ReservaDetalle
		if err := escanearDetalle(rows.Scan, &detalle); err != nil {
			return nil, fmt.Errorf("error al escanear detalle: %w", err)
		}
		creados = append(creados, detalle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar detalles creados: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error al confirmar transacción: %w", err)
	}

	return creados, nil
}

// GetByID obtiene un detalle con sus campos resueltos
func (r *detalleRepository) GetByID(id uuid.UUID) (*domain.ReservaDetalle, error) {
	detalle := &domain.ReservaDetalle{}
	err := escanearDetalle(
		r.db.QueryRow(consultaDetalleResuelto+` WHERE d.detail_id = $1`, id).Scan,
		detalle,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener detalle: %w", err)
	}

	return detalle, nil
}

// GetByReservaID obtiene todos los detalles de una cabecera
func (r *detalleRepository) GetByReservaID(reservaID uuid.UUID) ([]domain.ReservaDetalle, error) {
	rows, err := r.db.Query(consultaDetalleResuelto+` WHERE d.reservation_id = $1 ORDER BY d.check_in, h.number`, reservaID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener detalles de la reserva: %w", err)
	}
	defer rows.Close()

	var detalles []domain.ReservaDetalle
	for rows.Next() {
		var detalle domain.ReservaDetalle
		if err := escanearDetalle(rows.Scan, &detalle); err != nil {
			return nil, fmt.Errorf("error al escanear detalle: %w", err)
		}
		detalles = append(detalles, detalle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar detalles: %w", err)
	}

	return detalles, nil
}

// Update sobrescribe habitación, huésped y fechas de un detalle existente
func (r *detalleRepository) Update(detalle *domain.ReservaDetalle) error {
	query := `
		UPDATE reservation_detail
		SET room_id = $1, person_id = $2, check_in = $3, check_out = $4
		WHERE detail_id = $5
	`

	result, err := r.db.Exec(
		query,
		detalle.HabitacionID,
		detalle.PersonID,
		detalle.FechaEntrada,
		detalle.FechaSalida,
		detalle.ID,
	)
	if err != nil {
		return traducirErrorPq(err, "error al actualizar detalle")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("detalle con ID %s no encontrado", detalle.ID)
	}

	return nil
}

// Delete elimina un único detalle
func (r *detalleRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM reservation_detail WHERE detail_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar detalle: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("detalle con ID %s no encontrado", id)
	}

	return nil
}
