package booking

import (
	"errors"
	"fmt"
	"log/slog"

	"spaceBooker/internal/metrics"
	"spaceBooker/internal/models"
	"spaceBooker/internal/storage"
)

// BatchRequest books by room: the allocator picks the space.
type BatchRequest struct {
	RoomID    int64  `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ProvisionalBooking is a batch acceptance before it has an id; the whole
// batch is persisted in one bulk insert at the end.
type ProvisionalBooking struct {
	SpaceID   int64  `json:"space_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type RejectedRequest struct {
	Request BatchRequest
	Err     error
}

// BatchResult partitions a batch into accepted and rejected requests.
// Each slice preserves the submission order of its members.
type BatchResult struct {
	Created  []ProvisionalBooking
	Rejected []RejectedRequest
}

// CreateBookings processes room-scoped requests in order. Each request is
// checked against every persisted booking in the referenced rooms (one bulk
// preload) and against acceptances made earlier in the same batch, so two
// overlapping requests for one room cannot both pass even though neither is
// persisted yet. A rejected request never aborts the batch; only a storage
// failure does.
func (s *Service) CreateBookings(requests []BatchRequest) (BatchResult, error) {
	const op = "booking.CreateBookings"

	result := BatchResult{
		Created:  []ProvisionalBooking{},
		Rejected: []RejectedRequest{},
	}

	roomIDs := distinctRoomIDs(requests)

	err := s.repo.WithinTx(func(r Repository) error {
		baseline, err := r.FindBookingsByRoomIDs(roomIDs)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		for _, req := range requests {
			room, err := s.dir.FindRoomWithSpaces(req.RoomID)
			if err != nil {
				if errors.Is(err, storage.ErrRoomNotFound) {
					result.Rejected = append(result.Rejected, RejectedRequest{req, ErrRoomNotFound})
					continue
				}
				return fmt.Errorf("%s: %w", op, err)
			}

			siblings := make(map[int64]struct{}, len(room.Spaces))
			for _, sp := range room.Spaces {
				siblings[sp.ID] = struct{}{}
			}

			if roomHasConflict(siblings, baseline, result.Created, req) {
				metrics.BookingConflicts.Inc()
				result.Rejected = append(result.Rejected, RejectedRequest{req, ErrSlotTaken})
				continue
			}

			if len(room.Spaces) == 0 {
				result.Rejected = append(result.Rejected, RejectedRequest{req, ErrNoSpaceAvailable})
				continue
			}

			// First space by id, not the least loaded one: the conflict
			// check above already cleared the whole room.
			result.Created = append(result.Created, ProvisionalBooking{
				SpaceID:   room.Spaces[0].ID,
				StartTime: req.StartTime,
				EndTime:   req.EndTime,
			})
		}

		if len(result.Created) == 0 {
			return nil
		}

		records := make([]models.Booking, 0, len(result.Created))
		for _, p := range result.Created {
			records = append(records, models.Booking{
				SpaceID:   p.SpaceID,
				StartTime: p.StartTime,
				EndTime:   p.EndTime,
			})
		}

		if err := r.InsertBookingsBulk(records); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return BatchResult{}, err
	}

	metrics.BookingsCreated.Add(float64(len(result.Created)))

	s.log.Info("batch processed",
		slog.Int("requested", len(requests)),
		slog.Int("created", len(result.Created)),
		slog.Int("rejected", len(result.Rejected)),
	)

	return result, nil
}

func roomHasConflict(siblings map[int64]struct{}, baseline []models.Booking, accepted []ProvisionalBooking, req BatchRequest) bool {
	for _, b := range baseline {
		if _, ok := siblings[b.SpaceID]; !ok {
			continue
		}
		if Overlaps(b, req.StartTime, req.EndTime) {
			return true
		}
	}

	for _, p := range accepted {
		if _, ok := siblings[p.SpaceID]; !ok {
			continue
		}
		if Overlaps(models.Booking{SpaceID: p.SpaceID, StartTime: p.StartTime, EndTime: p.EndTime}, req.StartTime, req.EndTime) {
			return true
		}
	}

	return false
}

func distinctRoomIDs(requests []BatchRequest) []int64 {
	seen := make(map[int64]struct{}, len(requests))
	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		if _, ok := seen[req.RoomID]; ok {
			continue
		}
		seen[req.RoomID] = struct{}{}
		ids = append(ids, req.RoomID)
	}
	return ids
}
