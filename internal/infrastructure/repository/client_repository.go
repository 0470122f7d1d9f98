package repository

import (
	"database/sql"
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository crea una nueva instancia del repositorio de clientes
func NewClientRepository(db *sql.DB) domain.ClientRepository {
	return &clientRepository{db: db}
}

// Exists indica si el cliente existe y está activo
func (r *clientRepository) Exists(id uuid.UUID) (bool, error) {
	var existe bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM client WHERE client_id = $1 AND active = TRUE)`,
		id,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("error al verificar cliente: %w", err)
	}
	return existe, nil
}

// GetByID obtiene un cliente por su ID
func (r *clientRepository) GetByID(id uuid.UUID) (*domain.Client, error) {
	query := `
		SELECT client_id, business_name, ruc, email, active
		FROM client
		WHERE client_id = $1
	`

	cliente := &domain.Client{}
	err := r.db.QueryRow(query, id).Scan(
		&cliente.ID,
		&cliente.RazonSocial,
		&cliente.RUC,
		&cliente.Email,
		&cliente.Active,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener cliente: %w", err)
	}

	return cliente, nil
}
