package application

import (
	"fmt"
	"time"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
)

// Repositorios en memoria para probar los servicios sin base de datos.
// Respetan los contratos de los repositorios reales: (nil, nil) cuando no
// existe el registro y todo-o-nada en CreateBulk.

type fakeClientRepo struct {
	clientes map[uuid.UUID]domain.Client
}

func (f *fakeClientRepo) Exists(id uuid.UUID) (bool, error) {
	c, ok := f.clientes[id]
	return ok && c.Active, nil
}

func (f *fakeClientRepo) GetByID(id uuid.UUID) (*domain.Client, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

type fakePersonRepo struct {
	personas map[uuid.UUID]domain.Person
}

func (f *fakePersonRepo) Exists(id uuid.UUID) (bool, error) {
	p, ok := f.personas[id]
	return ok && p.Active, nil
}

func (f *fakePersonRepo) GetByID(id uuid.UUID) (*domain.Person, error) {
	p, ok := f.personas[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeHabitacionRepo struct {
	habitaciones map[uuid.UUID]domain.Habitacion
}

func (f *fakeHabitacionRepo) GetAllRooms() ([]domain.Habitacion, error) {
	var todas []domain.Habitacion
	for _, h := range f.habitaciones {
		todas = append(todas, h)
	}
	return todas, nil
}

func (f *fakeHabitacionRepo) GetRoomByID(id uuid.UUID) (*domain.Habitacion, error) {
	h, ok := f.habitaciones[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (f *fakeHabitacionRepo) Exists(id uuid.UUID) (bool, error) {
	_, ok := f.habitaciones[id]
	return ok, nil
}

type fakeReservaRepo struct {
	reservas  map[uuid.UUID]domain.Reserva
	detalles  *fakeDetalleRepo
	expiradas int64
}

func (f *fakeReservaRepo) Create(reserva *domain.Reserva) error {
	reserva.ID = uuid.New()
	f.reservas[reserva.ID] = *reserva
	return nil
}

func (f *fakeReservaRepo) GetByID(id uuid.UUID) (*domain.Reserva, error) {
	r, ok := f.reservas[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeReservaRepo) GetAll() ([]domain.Reserva, error) {
	var todas []domain.Reserva
	for _, r := range f.reservas {
		todas = append(todas, r)
	}
	return todas, nil
}

func (f *fakeReservaRepo) Update(reserva *domain.Reserva) error {
	if _, ok := f.reservas[reserva.ID]; !ok {
		return fmt.Errorf("reserva %s no existe", reserva.ID)
	}
	f.reservas[reserva.ID] = *reserva
	return nil
}

// Delete elimina la cabecera y, como el repositorio real, sus detalles en
// la misma operación. Las habitaciones y huéspedes referenciados no se tocan.
func (f *fakeReservaRepo) Delete(id uuid.UUID) error {
	if _, ok := f.reservas[id]; !ok {
		return fmt.Errorf("reserva %s no existe", id)
	}

	restantes := f.detalles.detalles[:0]
	for _, d := range f.detalles.detalles {
		if d.ReservaID != id {
			restantes = append(restantes, d)
		}
	}
	f.detalles.detalles = restantes

	delete(f.reservas, id)
	return nil
}

func (f *fakeReservaRepo) UpdateExpiredReservations() (int64, error) {
	return f.expiradas, nil
}

type fakeDetalleRepo struct {
	detalles     []domain.ReservaDetalle
	habitaciones *fakeHabitacionRepo
	personas     *fakePersonRepo
}

// CreateBulk imita la transacción del repositorio real: primero verifica
// todas las transiciones y, si alguna habitación no está Free, no escribe
// absolutamente nada.
func (f *fakeDetalleRepo) CreateBulk(reservaID uuid.UUID, detalles []domain.ReservaDetalle, habitaciones []uuid.UUID) ([]domain.ReservaDetalle, error) {
	for _, habID := range habitaciones {
		h, ok := f.habitaciones.habitaciones[habID]
		if !ok || h.Estado != domain.HabitacionFree {
			return nil, fmt.Errorf("habitación %s: %w", habID, domain.ErrHabitacionNoDisponible)
		}
	}

	for _, habID := range habitaciones {
		h := f.habitaciones.habitaciones[habID]
		h.Estado = domain.HabitacionReserved
		f.habitaciones.habitaciones[habID] = h
	}

	creados := make([]domain.ReservaDetalle, 0, len(detalles))
	for _, d := range detalles {
		d.ID = uuid.New()
		d.ReservaID = reservaID
		if h, ok := f.habitaciones.habitaciones[d.HabitacionID]; ok {
			d.NumeroHabitacion = h.Numero
		}
		if p, ok := f.personas.personas[d.PersonID]; ok {
			d.NombreHuesped = p.NombreCompleto()
		}
		f.detalles = append(f.detalles, d)
		creados = append(creados, d)
	}
	return creados, nil
}

func (f *fakeDetalleRepo) GetByID(id uuid.UUID) (*domain.ReservaDetalle, error) {
	for _, d := range f.detalles {
		if d.ID == id {
			copia := d
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeDetalleRepo) GetByReservaID(reservaID uuid.UUID) ([]domain.ReservaDetalle, error) {
	var resultado []domain.ReservaDetalle
	for _, d := range f.detalles {
		if d.ReservaID == reservaID {
			resultado = append(resultado, d)
		}
	}
	return resultado, nil
}

func (f *fakeDetalleRepo) Update(detalle *domain.ReservaDetalle) error {
	for i, d := range f.detalles {
		if d.ID == detalle.ID {
			f.detalles[i] = *detalle
			return nil
		}
	}
	return fmt.Errorf("detalle %s no existe", detalle.ID)
}

func (f *fakeDetalleRepo) Delete(id uuid.UUID) error {
	for i, d := range f.detalles {
		if d.ID == id {
			f.detalles = append(f.detalles[:i], f.detalles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("detalle %s no existe", id)
}

// entornoPrueba agrupa los repositorios falsos y los servicios ya armados.
type entornoPrueba struct {
	clientes     *fakeClientRepo
	personas     *fakePersonRepo
	habitaciones *fakeHabitacionRepo
	reservas     *fakeReservaRepo
	detalles     *fakeDetalleRepo

	reservaService     *ReservaService
	detalleService     *DetalleService
	orquestadorService *OrquestadorService
	habitacionService  *HabitacionService
}

func nuevoEntorno() *entornoPrueba {
	clientes := &fakeClientRepo{clientes: make(map[uuid.UUID]domain.Client)}
	personas := &fakePersonRepo{personas: make(map[uuid.UUID]domain.Person)}
	habitaciones := &fakeHabitacionRepo{habitaciones: make(map[uuid.UUID]domain.Habitacion)}
	detalles := &fakeDetalleRepo{habitaciones: habitaciones, personas: personas}
	reservas := &fakeReservaRepo{reservas: make(map[uuid.UUID]domain.Reserva), detalles: detalles}

	refValidator := NewRefValidator(clientes, habitaciones, personas)

	return &entornoPrueba{
		clientes:     clientes,
		personas:     personas,
		habitaciones: habitaciones,
		reservas:     reservas,
		detalles:     detalles,

		reservaService:     NewReservaService(reservas, clientes, refValidator, nil),
		detalleService:     NewDetalleService(detalles, reservas, refValidator),
		orquestadorService: NewOrquestadorService(detalles, reservas, refValidator),
		habitacionService:  NewHabitacionService(habitaciones),
	}
}

func (e *entornoPrueba) agregarCliente() uuid.UUID {
	id := uuid.New()
	e.clientes.clientes[id] = domain.Client{
		ID:          id,
		RazonSocial: "Hotel Copacabana SRL",
		RUC:         "1023456789",
		Email:       "reservas@copacabana.bo",
		Active:      true,
	}
	return id
}

func (e *entornoPrueba) agregarPersona(nombre string) uuid.UUID {
	id := uuid.New()
	e.personas.personas[id] = domain.Person{
		PersonID:       id,
		Name:           nombre,
		FirstSurname:   "Quispe",
		DocumentNumber: "6758493",
		BirthDate:      time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		Active:         true,
	}
	return id
}

func (e *entornoPrueba) agregarHabitacion(numero string, estado domain.EstadoHabitacion) uuid.UUID {
	id := uuid.New()
	e.habitaciones.habitaciones[id] = domain.Habitacion{
		ID:     id,
		Numero: numero,
		Piso:   "2",
		Estado: estado,
	}
	return id
}

func (e *entornoPrueba) agregarReserva(clienteID uuid.UUID, estado domain.EstadoReserva) uuid.UUID {
	id := uuid.New()
	e.reservas.reservas[id] = domain.Reserva{
		ID:            id,
		ClienteID:     clienteID,
		Estado:        estado,
		MontoTotal:    350,
		FechaCreacion: time.Now(),
	}
	return id
}

func (e *entornoPrueba) estadoHabitacion(id uuid.UUID) domain.EstadoHabitacion {
	return e.habitaciones.habitaciones[id].Estado
}
