package scheduler

import (
	"log"
	"time"

	"github.com/DoukeUCB/HotelManagement-sub000/internal/domain"
)

// ReservationScheduler marca como Completed las reservas confirmadas cuyo
// último check-out ya pasó. Corre dentro del proceso, una vez al día.
type ReservationScheduler struct {
	reservaRepo domain.ReservaRepository
	timer       *time.Timer
	done        chan struct{}
}

// NewReservationScheduler crea una nueva instancia del scheduler de reservas
func NewReservationScheduler(reservaRepo domain.ReservaRepository) *ReservationScheduler {
	return &ReservationScheduler{
		reservaRepo: reservaRepo,
		done:        make(chan struct{}),
	}
}

// Start ejecuta una pasada inmediata y programa la siguiente para las
// 00:01 de cada día.
func (s *ReservationScheduler) Start() {
	log.Println("scheduler de reservas iniciado")

	s.UpdateCompletedReservations()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())

	s.timer = time.AfterFunc(time.Until(nextRun), func() {
		s.UpdateCompletedReservations()

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.UpdateCompletedReservations()
			case <-s.done:
				return
			}
		}
	})
}

// Stop detiene el scheduler y libera su goroutine
func (s *ReservationScheduler) Stop() {
	if s.timer != nil {
		s.timer.Stop()
	}
	close(s.done)
	log.Println("scheduler de reservas detenido")
}

// UpdateCompletedReservations ejecuta una pasada de actualización
func (s *ReservationScheduler) UpdateCompletedReservations() {
	actualizadas, err := s.reservaRepo.UpdateExpiredReservations()
	if err != nil {
		log.Printf("error al actualizar reservas expiradas: %v", err)
		return
	}
	if actualizadas > 0 {
		log.Printf("reservas marcadas como Completed: %d", actualizadas)
	}
}
