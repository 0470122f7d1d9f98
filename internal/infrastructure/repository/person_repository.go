package repository

import (
	"database/sql"
	"fmt"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

type personRepository struct {
	db *sql.DB
}

// NewPersonRepository crea una nueva instancia del repositorio de huéspedes
func NewPersonRepository(db *sql.DB) domain.PersonRepository {
	return &personRepository{db: db}
}

// Exists indica si el huésped existe y está activo
func (r *personRepository) Exists(id uuid.UUID) (bool, error) {
	var existe bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM person WHERE person_id = $1 AND active = TRUE)`,
		id,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("error al verificar huésped: %w", err)
	}
	return existe, nil
}

// GetByID obtiene un huésped por su ID
func (r *personRepository) GetByID(id uuid.UUID) (*domain.Person, error) {
	query := `
		SELECT
			person_id,
			name,
			first_surname,
			second_surname,
			document_number,
			phone,
			birth_date,
			active
		FROM person
		WHERE person_id = $1
	`

	persona := &domain.Person{}
	var segundoApellido sql.NullString
	var telefono sql.NullString

	err := r.db.QueryRow(query, id).Scan(
		&persona.PersonID,
		&persona.Name,
		&persona.FirstSurname,
		&segundoApellido,
		&persona.DocumentNumber,
		&telefono,
		&persona.BirthDate,
		&persona.Active,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener huésped: %w", err)
	}

	if segundoApellido.Valid {
		persona.SecondSurname = &segundoApellido.String
	}
	if telefono.Valid {
		persona.Phone = &telefono.String
	}

	return persona, nil
}
