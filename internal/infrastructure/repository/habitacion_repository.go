package repository

import (
	"database/sql"
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

type habitacionRepository struct {
	db *sql.DB
}

// NewHabitacionRepository crea una nueva instancia del repositorio de habitaciones
func NewHabitacionRepository(db *sql.DB) domain.HabitacionRepository {
	return &habitacionRepository{db: db}
}

// GetAllRooms devuelve todas las habitaciones con su tipo resuelto
func (r *habitacionRepository) GetAllRooms() ([]domain.Habitacion, error) {
	query := `
		SELECT
			h.room_id,
			h.room_type_id,
			h.number,
			h.floor,
			h.status,
			t.room_type_id,
			t.title,
			t.max_capacity,
			t.base_price
		FROM room h
		INNER JOIN room_type t ON t.room_type_id = h.room_type_id
		ORDER BY h.number
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitaciones: %w", err)
	}
	defer rows.Close()

	var habitaciones []domain.Habitacion
	for rows.Next() {
		var habitacion domain.Habitacion
		var tipo domain.TipoHabitacion

		err := rows.Scan(
			&habitacion.ID,
			&habitacion.TipoHabitacionID,
			&habitacion.Numero,
			&habitacion.Piso,
			&habitacion.Estado,
			&tipo.ID,
			&tipo.Titulo,
			&tipo.CapacidadMaxima,
			&tipo.PrecioBase,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear habitación: %w", err)
		}

		habitacion.TipoHabitacion = &tipo
		habitaciones = append(habitaciones, habitacion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar habitaciones: %w", err)
	}

	return habitaciones, nil
}

// GetRoomByID obtiene una habitación con su tipo resuelto
func (r *habitacionRepository) GetRoomByID(id uuid.UUID) (*domain.Habitacion, error) {
	query := `
		SELECT
			h.room_id,
			h.room_type_id,
			h.number,
			h.floor,
			h.status,
			t.room_type_id,
			t.title,
			t.max_capacity,
			t.base_price
		FROM room h
		INNER JOIN room_type t ON t.room_type_id = h.room_type_id
		WHERE h.room_id = $1
	`

	habitacion := &domain.Habitacion{}
	tipo := &domain.TipoHabitacion{}

	err := r.db.QueryRow(query, id).Scan(
		&habitacion.ID,
		&habitacion.TipoHabitacionID,
		&habitacion.Numero,
		&habitacion.Piso,
		&habitacion.Estado,
		&tipo.ID,
		&tipo.Titulo,
		&tipo.CapacidadMaxima,
		&tipo.PrecioBase,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitación: %w", err)
	}

	habitacion.TipoHabitacion = tipo
	return habitacion, nil
}

// Exists indica si la habitación existe
func (r *habitacionRepository) Exists(id uuid.UUID) (bool, error) {
	var existe bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM room WHERE room_id = $1)`, id).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("error al verificar habitación: %w", err)
	}
	return existe, nil
}

// marcarHabitacionReservada aplica la transición Free→Reserved dentro de la
// transacción dada. La actualización es condicional sobre el estado actual:
// si la habitación ya no está Free no se afecta ninguna fila y se devuelve
// domain.ErrHabitacionNoDisponible, lo que revierte la transacción completa
// del llamador.
func marcarHabitacionReservada(tx *sql.Tx, id uuid.UUID) error {
	result, err := tx.Exec(
		`UPDATE room SET status = $1 WHERE room_id = $2 AND status = $3`,
		domain.HabitacionReserved,
		id,
		domain.HabitacionFree,
	)
	if err != nil {
		return fmt.Errorf("error al reservar habitación %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("habitación %s: %w", id, domain.ErrHabitacionNoDisponible)
	}

	return nil
}
