package domain

import "github.com/google/uuid"

// Client representa la entidad de facturación de una reserva. El núcleo de
// reservas solo la referencia; su mantenimiento vive en otro módulo.
type Client struct {
	ID          uuid.UUID `json:"id"`
	RazonSocial string    `json:"displayName"`
	RUC         string    `json:"taxNumber"`
	Email       string    `json:"email"`
	Active      bool      `json:"active"`
}

// ClientRepository define las operaciones de lectura con clientes
type ClientRepository interface {
	// Exists indica si el cliente existe y está activo
	Exists(id uuid.UUID) (bool, error)
	// GetByID obtiene un cliente; (nil, nil) si no existe
	GetByID(id uuid.UUID) (*Client, error)
}
