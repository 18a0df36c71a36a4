package booking

import (
	"errors"
	"fmt"
	"log/slog"

	"spaceBooker/internal/metrics"
	"spaceBooker/internal/models"
	"spaceBooker/internal/storage"
)

// Directory resolves the room/space membership graph. Rooms and spaces are
// created by an administrative path and never change, which is what makes
// the redis cache in front of the postgres implementation safe.
type Directory interface {
	FindSpaceWithRoomAndSiblings(spaceID int64) (*models.Space, *models.Room, error)
	FindRoomWithSpaces(roomID int64) (*models.Room, error)
}

// Repository stores bookings. WithinTx runs fn against a transaction-scoped
// repository; every exit path releases the scope, and a nested call reuses
// the ambient transaction.
type Repository interface {
	FindBookingsBySpaceIDs(spaceIDs []int64) ([]models.Booking, error)
	FindBookingsByRoomIDs(roomIDs []int64) ([]models.Booking, error)
	InsertBooking(b models.Booking) (models.Booking, error)
	InsertBookingsBulk(bs []models.Booking) error
	WithinTx(fn func(Repository) error) error
}

type Service struct {
	log  *slog.Logger
	dir  Directory
	repo Repository
}

func New(log *slog.Logger, dir Directory, repo Repository) *Service {
	return &Service{log: log, dir: dir, repo: repo}
}

// CreateBooking books the [startTime, endTime) window on the given space,
// unless any space in the same room already holds an overlapping booking.
// Conflict scope is deliberately the whole room, not just the target space.
func (s *Service) CreateBooking(spaceID int64, startTime, endTime string) (models.Booking, error) {
	const op = "booking.CreateBooking"

	space, room, err := s.dir.FindSpaceWithRoomAndSiblings(spaceID)
	if err != nil {
		if errors.Is(err, storage.ErrSpaceNotFound) {
			return models.Booking{}, ErrSpaceNotFound
		}
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	var created models.Booking

	err = s.repo.WithinTx(func(r Repository) error {
		existing, err := r.FindBookingsBySpaceIDs(spaceIDs(room.Spaces))
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		for _, b := range existing {
			if Overlaps(b, startTime, endTime) {
				return ErrSlotTaken
			}
		}

		created, err = r.InsertBooking(models.Booking{
			SpaceID:   space.ID,
			StartTime: startTime,
			EndTime:   endTime,
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			metrics.BookingConflicts.Inc()
			return models.Booking{}, ErrSlotTaken
		}
		return models.Booking{}, err
	}

	metrics.BookingsCreated.Inc()

	s.log.Info("booking created",
		slog.Int64("booking_id", created.ID),
		slog.Int64("space_id", created.SpaceID),
	)

	return created, nil
}

// RoomBookings returns the room with its spaces and every booking held on
// any of them.
func (s *Service) RoomBookings(roomID int64) (*models.Room, []models.Booking, error) {
	const op = "booking.RoomBookings"

	room, err := s.dir.FindRoomWithSpaces(roomID)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			return nil, nil, ErrRoomNotFound
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.repo.FindBookingsBySpaceIDs(spaceIDs(room.Spaces))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return room, bookings, nil
}

func spaceIDs(spaces []models.Space) []int64 {
	ids := make([]int64, 0, len(spaces))
	for _, sp := range spaces {
		ids = append(ids, sp.ID)
	}
	return ids
}
