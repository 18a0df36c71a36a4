package booking

import (
	"spaceBooker/internal/models"
	"spaceBooker/internal/storage"
)

// fakeStore is an in-memory Directory + Repository used by the allocator
// tests. It keeps the same ordering guarantees as the postgres
// implementation: spaces and bookings sorted by id.
type fakeStore struct {
	rooms    map[int64]*models.Room
	bookings []models.Booking
	nextID   int64

	txCount       int
	bulkInsertCnt int
	queryErr      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rooms: make(map[int64]*models.Room), nextID: 1}
}

func (f *fakeStore) addRoom(id int64, name string, spaces ...models.Space) {
	f.rooms[id] = &models.Room{ID: id, Name: name, Spaces: spaces}
}

func (f *fakeStore) addBooking(spaceID int64, start, end string) {
	f.bookings = append(f.bookings, models.Booking{
		ID:        f.nextID,
		SpaceID:   spaceID,
		StartTime: start,
		EndTime:   end,
	})
	f.nextID++
}

func (f *fakeStore) FindRoomWithSpaces(roomID int64) (*models.Room, error) {
	room, ok := f.rooms[roomID]
	if !ok {
		return nil, storage.ErrRoomNotFound
	}
	return room, nil
}

func (f *fakeStore) FindSpaceWithRoomAndSiblings(spaceID int64) (*models.Space, *models.Room, error) {
	for _, room := range f.rooms {
		for _, sp := range room.Spaces {
			if sp.ID == spaceID {
				return &sp, room, nil
			}
		}
	}
	return nil, nil, storage.ErrSpaceNotFound
}

func (f *fakeStore) FindBookingsBySpaceIDs(spaceIDs []int64) ([]models.Booking, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	wanted := make(map[int64]struct{}, len(spaceIDs))
	for _, id := range spaceIDs {
		wanted[id] = struct{}{}
	}

	var out []models.Booking
	for _, b := range f.bookings {
		if _, ok := wanted[b.SpaceID]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) FindBookingsByRoomIDs(roomIDs []int64) ([]models.Booking, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	var ids []int64
	for _, roomID := range roomIDs {
		if room, ok := f.rooms[roomID]; ok {
			for _, sp := range room.Spaces {
				ids = append(ids, sp.ID)
			}
		}
	}
	return f.FindBookingsBySpaceIDs(ids)
}

func (f *fakeStore) InsertBooking(b models.Booking) (models.Booking, error) {
	b.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeStore) InsertBookingsBulk(bs []models.Booking) error {
	f.bulkInsertCnt++
	for _, b := range bs {
		b.ID = f.nextID
		f.nextID++
		f.bookings = append(f.bookings, b)
	}
	return nil
}

func (f *fakeStore) WithinTx(fn func(Repository) error) error {
	f.txCount++
	return fn(f)
}
