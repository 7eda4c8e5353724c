package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tripBooker/internal/config"
	"tripBooker/internal/models"
	"tripBooker/internal/storage"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrations embed.FS

const bookingColumns = `id, trip_id, trip_name, user_name, user_email, date, price, status, booking_date`

type Storage struct {
	DB    *sql.DB
	log   *slog.Logger
	trips storage.TripFinder
	now   func() time.Time
}

func InitDB(dbCfg *config.Database, log *slog.Logger, trips storage.TripFinder) (*Storage, error) {
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

	return New(db, log, trips), nil
}

func New(db *sql.DB, log *slog.Logger, trips storage.TripFinder) *Storage {
	return &Storage{
		DB:    db,
		log:   log.With(slog.String("component", "storage/postgres")),
		trips: trips,
		now:   time.Now,
	}
}

// Migrate brings the schema up to date with the embedded migrations.
func (s *Storage) Migrate() error {
	const op = "storage.postgres.Migrate"

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	driver, err := migratepg.WithInstance(s.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CheckAvailability(ctx context.Context, date models.Date) (models.Availability, error) {
	const op = "storage.postgres.CheckAvailability"

	var booked int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE date = $1`, string(date)).Scan(&booked)
	if err != nil {
		return models.Availability{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.NewAvailability(booked), nil
}

// CreateBooking serializes creates for the same date with a transaction-scoped
// advisory lock, so the count and the insert see a consistent ledger.
func (s *Storage) CreateBooking(ctx context.Context, nb models.NewBooking) (models.Booking, error) {
	const op = "storage.postgres.CreateBooking"

	trip, ok := s.trips.Trip(nb.TripID)
	if !ok {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrTripNotFound)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, string(nb.Date)); err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to lock date: %w", op, err)
	}

	var booked int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE date = $1`, string(nb.Date)).Scan(&booked)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to count bookings: %w", op, err)
	}

	if booked >= models.TotalVans {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrNoVansAvailable)
	}

	var seq int64
	if err = tx.QueryRowContext(ctx, `SELECT nextval('booking_counter')`).Scan(&seq); err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to allocate id: %w", op, err)
	}

	booking := models.Booking{
		ID:          fmt.Sprintf("booking-%d", seq),
		TripID:      nb.TripID,
		TripName:    trip.Title,
		UserName:    nb.UserName,
		UserEmail:   nb.UserEmail,
		Date:        nb.Date,
		Price:       trip.Price,
		Status:      models.StatusConfirmed,
		BookingDate: models.FormatBookingDate(s.now()),
	}

	insertQuery := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = tx.ExecContext(ctx, insertQuery,
		booking.ID,
		booking.TripID,
		booking.TripName,
		booking.UserName,
		booking.UserEmail,
		string(booking.Date),
		booking.Price,
		booking.Status,
		booking.BookingDate,
	)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to create booking: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	s.log.Debug("booking stored", slog.String("id", booking.ID), slog.Int("booked_for_date", booked+1))

	return booking, nil
}

func (s *Storage) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	const op = "storage.postgres.GetAllBookings"

	rows, err := s.DB.QueryContext(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err = scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("%s: failed to scan booking: %w", op, err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating bookings: %w", op, err)
	}

	return bookings, nil
}

func (s *Storage) GetBooking(ctx context.Context, id string) (models.Booking, error) {
	const op = "storage.postgres.GetBooking"

	row := s.DB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	return s.oneBooking(op, row)
}

func (s *Storage) UpdateBookingStatus(ctx context.Context, id, status string) (models.Booking, error) {
	const op = "storage.postgres.UpdateBookingStatus"

	row := s.DB.QueryRowContext(ctx,
		`UPDATE bookings SET status = $1 WHERE id = $2 RETURNING `+bookingColumns,
		status, id,
	)

	return s.oneBooking(op, row)
}

func (s *Storage) DeleteBooking(ctx context.Context, id string) (models.Booking, error) {
	const op = "storage.postgres.DeleteBooking"

	row := s.DB.QueryRowContext(ctx, `DELETE FROM bookings WHERE id = $1 RETURNING `+bookingColumns, id)

	return s.oneBooking(op, row)
}

func (s *Storage) oneBooking(op string, row *sql.Row) (models.Booking, error) {
	var b models.Booking

	err := scanBooking(row, &b)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(sc scanner, b *models.Booking) error {
	return sc.Scan(
		&b.ID,
		&b.TripID,
		&b.TripName,
		&b.UserName,
		&b.UserEmail,
		&b.Date,
		&b.Price,
		&b.Status,
		&b.BookingDate,
	)
}
