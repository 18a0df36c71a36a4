package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"spaceBooker/internal/booking"
	"spaceBooker/internal/config"
	"spaceBooker/internal/models"
	"spaceBooker/internal/storage"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx, so every query below runs
// either directly or inside a transaction scope.
type dbtx interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

type queries struct {
	db dbtx
}

type Storage struct {
	queries
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = bootstrap(db); err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	return &Storage{queries: queries{db: db}, DB: db}, nil
}

// Timestamps are TEXT on purpose: the whole system compares them
// lexicographically in the fixed "2006-01-02 15:04:05" form.
func bootstrap(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS rooms (
			id   SERIAL PRIMARY KEY,
			name TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS spaces (
			id      SERIAL PRIMARY KEY,
			room_id INTEGER NOT NULL REFERENCES rooms (id),
			name    TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS bookings (
			id         SERIAL PRIMARY KEY,
			space_id   INTEGER NOT NULL REFERENCES spaces (id),
			start_time TEXT NOT NULL,
			end_time   TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_spaces_room_id ON spaces (room_id);
		CREATE INDEX IF NOT EXISTS idx_bookings_space_id ON bookings (space_id);`

	_, err := db.Exec(schema)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// WithinTx runs fn against a transaction-scoped repository. The
// transaction is rolled back on any error and on panic, committed
// otherwise.
func (s *Storage) WithinTx(fn func(booking.Repository) error) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = fn(&txStorage{queries{db: tx}}); err != nil {
		return err
	}

	return tx.Commit()
}

type txStorage struct {
	queries
}

// WithinTx on an already transaction-scoped repository reuses the ambient
// transaction.
func (t *txStorage) WithinTx(fn func(booking.Repository) error) error {
	return fn(t)
}

func (q queries) FindRoomWithSpaces(roomID int64) (*models.Room, error) {
	const op = "storage.postgres.FindRoomWithSpaces"

	var room models.Room
	err := q.db.QueryRow(`SELECT id, name FROM rooms WHERE id = $1`, roomID).
		Scan(&room.ID, &room.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRoomNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := q.db.Query(`SELECT id, room_id, name FROM spaces WHERE room_id = $1 ORDER BY id`, roomID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var space models.Space
		if err = rows.Scan(&space.ID, &space.RoomID, &space.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		room.Spaces = append(room.Spaces, space)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &room, nil
}

func (q queries) FindSpaceWithRoomAndSiblings(spaceID int64) (*models.Space, *models.Room, error) {
	const op = "storage.postgres.FindSpaceWithRoomAndSiblings"

	var space models.Space
	err := q.db.QueryRow(`SELECT id, room_id, name FROM spaces WHERE id = $1`, spaceID).
		Scan(&space.ID, &space.RoomID, &space.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, storage.ErrSpaceNotFound
		}
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	room, err := q.FindRoomWithSpaces(space.RoomID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return &space, room, nil
}

func (q queries) FindBookingsBySpaceIDs(spaceIDs []int64) ([]models.Booking, error) {
	const op = "storage.postgres.FindBookingsBySpaceIDs"

	if len(spaceIDs) == 0 {
		return nil, nil
	}

	rows, err := q.db.Query(
		`SELECT id, space_id, start_time, end_time FROM bookings WHERE space_id = ANY($1) ORDER BY id`,
		pq.Array(spaceIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanBookings(rows, op)
}

func (q queries) FindBookingsByRoomIDs(roomIDs []int64) ([]models.Booking, error) {
	const op = "storage.postgres.FindBookingsByRoomIDs"

	if len(roomIDs) == 0 {
		return nil, nil
	}

	rows, err := q.db.Query(
		`SELECT b.id, b.space_id, b.start_time, b.end_time
		 FROM bookings b
		 JOIN spaces s ON s.id = b.space_id
		 WHERE s.room_id = ANY($1)
		 ORDER BY b.id`,
		pq.Array(roomIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanBookings(rows, op)
}

func (q queries) InsertBooking(b models.Booking) (models.Booking, error) {
	const op = "storage.postgres.InsertBooking"

	err := q.db.QueryRow(
		`INSERT INTO bookings (space_id, start_time, end_time) VALUES ($1, $2, $3) RETURNING id`,
		b.SpaceID, b.StartTime, b.EndTime,
	).Scan(&b.ID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (q queries) InsertBookingsBulk(bs []models.Booking) error {
	const op = "storage.postgres.InsertBookingsBulk"

	if len(bs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO bookings (space_id, start_time, end_time) VALUES `)

	args := make([]any, 0, len(bs)*3)
	for i, b := range bs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, b.SpaceID, b.StartTime, b.EndTime)
	}

	if _, err := q.db.Exec(sb.String(), args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanBookings(rows *sql.Rows, op string) ([]models.Booking, error) {
	var bookings []models.Booking

	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.SpaceID, &b.StartTime, &b.EndTime); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}
