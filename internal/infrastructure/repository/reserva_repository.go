package repository

import (
	"database/sql"
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

type reservaRepository struct {
	db *sql.DB
}

// NewReservaRepository crea una nueva instancia del repositorio de reservas
func NewReservaRepository(db *sql.DB) domain.ReservaRepository {
	return &reservaRepository{db: db}
}

// Create persiste una nueva cabecera y asigna su ID
func (r *reservaRepository) Create(reserva *domain.Reserva) error {
	reserva.ID = uuid.New()

	query := `
		INSERT INTO reservation (
			reservation_id,
			client_id,
			status,
			total_amount,
			creation_date
		) VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(
		query,
		reserva.ID,
		reserva.ClienteID,
		reserva.Estado,
		reserva.MontoTotal,
		reserva.FechaCreacion,
	)
	if err != nil {
		return traducirErrorPq(err, "error al crear reserva")
	}

	return nil
}

// GetByID obtiene una cabecera con el nombre del cliente resuelto
func (r *reservaRepository) GetByID(id uuid.UUID) (*domain.Reserva, error) {
	query := `
		SELECT
			r.reservation_id,
			r.client_id,
			r.status,
			r.total_amount,
			r.creation_date,
			c.business_name
		FROM reservation r
		INNER JOIN client c ON c.client_id = r.client_id
		WHERE r.reservation_id = $1
	`

	reserva := &domain.Reserva{}
	err := r.db.QueryRow(query, id).Scan(
		&reserva.ID,
		&reserva.ClienteID,
		&reserva.Estado,
		&reserva.MontoTotal,
		&reserva.FechaCreacion,
		&reserva.NombreCliente,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}

	return reserva, nil
}

// GetAll obtiene todas las cabeceras con el nombre del cliente resuelto
func (r *reservaRepository) GetAll() ([]domain.Reserva, error) {
	query := `
		SELECT
			r.reservation_id,
			r.client_id,
			r.status,
			r.total_amount,
			r.creation_date,
			c.business_name
		FROM reservation r
		INNER JOIN client c ON c.client_id = r.client_id
		ORDER BY r.creation_date DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservas: %w", err)
	}
	defer rows.Close()

	var reservas []domain.Reserva
	for rows.Next() {
		var reserva domain.Reserva
		err := rows.Scan(
			&reserva.ID,
			&reserva.ClienteID,
			&reserva.Estado,
			&reserva.MontoTotal,
			&reserva.FechaCreacion,
			&reserva.NombreCliente,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear reserva: %w", err)
		}
		reservas = append(reservas, reserva)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar reservas: %w", err)
	}

	return reservas, nil
}

// Update sobrescribe cliente, estado y monto de una cabecera existente
func (r *reservaRepository) Update(reserva *domain.Reserva) error {
	query := `
		UPDATE reservation
		SET client_id = $1, status = $2, total_amount = $3
		WHERE reservation_id = $4
	`

	result, err := r.db.Exec(query, reserva.ClienteID, reserva.Estado, reserva.MontoTotal, reserva.ID)
	if err != nil {
		return traducirErrorPq(err, "error al actualizar reserva")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("reserva con ID %s no encontrada", reserva.ID)
	}

	return nil
}

// Delete elimina la cabecera y sus detalles en una sola transacción. Las
// habitaciones, clientes y huéspedes referenciados no se tocan.
func (r *reservaRepository) Delete(id uuid.UUID) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reservation_detail WHERE reservation_id = $1`, id); err != nil {
		return fmt.Errorf("error al eliminar detalles de la reserva: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM reservation WHERE reservation_id = $1`, id)
	if err != nil {
		return traducirErrorPq(err, "error al eliminar reserva")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("reserva con ID %s no encontrada", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}

	return nil
}

// UpdateExpiredReservations marca como Completed las reservas Confirmed
// cuyo último check-out ya pasó
func (r *reservaRepository) UpdateExpiredReservations() (int64, error) {
	query := `
		UPDATE reservation r
		SET status = 'Completed'
		WHERE r.status = 'Confirmed'
		AND EXISTS (
			SELECT 1
			FROM reservation_detail d
			WHERE d.reservation_id = r.reservation_id
			GROUP BY d.reservation_id
			HAVING MAX(d.check_out) < CURRENT_DATE
		)
	`

	result, err := r.db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("error al actualizar reservas expiradas: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}
