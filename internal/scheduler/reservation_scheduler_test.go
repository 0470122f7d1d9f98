package scheduler

import (
	"errors"
	"testing"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReservaRepo struct {
	pasadas   int
	expiradas int64
	errPasada error
}

func (f *fakeReservaRepo) Create(*domain.Reserva) error               { return nil }
func (f *fakeReservaRepo) GetByID(uuid.UUID) (*domain.Reserva, error) { return nil, nil }
func (f *fakeReservaRepo) GetAll() ([]domain.Reserva, error)          { return nil, nil }
func (f *fakeReservaRepo) Update(*domain.Reserva) error               { return nil }
func (f *fakeReservaRepo) Delete(uuid.UUID) error                     { return nil }

func (f *fakeReservaRepo) UpdateExpiredReservations() (int64, error) {
	f.pasadas++
	return f.expiradas, f.errPasada
}

func TestUpdateCompletedReservationsEjecutaPasada(t *testing.T) {
	repo := &fakeReservaRepo{expiradas: 3}
	s := NewReservationScheduler(repo)

	s.UpdateCompletedReservations()
	assert.Equal(t, 1, repo.pasadas)

	// Un error del repositorio no interrumpe al scheduler
	repo.errPasada = errors.New("conexión perdida")
	s.UpdateCompletedReservations()
	assert.Equal(t, 2, repo.pasadas)
}

func TestStartEjecutaPasadaInmediataYStopLibera(t *testing.T) {
	repo := &fakeReservaRepo{}
	s := NewReservationScheduler(repo)

	s.Start()
	assert.Equal(t, 1, repo.pasadas)

	s.Stop()

	// El canal de parada queda cerrado: la goroutine del ticker diario
	// terminará en cuanto despierte
	select {
	case <-s.done:
	default:
		require.Fail(t, "el canal de parada sigue abierto tras Stop")
	}
}

func TestStopSinTickerActivo(t *testing.T) {
	// Stop antes de que el timer de medianoche dispare no debe entrar en
	// pánico ni bloquear
	s := NewReservationScheduler(&fakeReservaRepo{})
	s.Start()
	s.Stop()
}
