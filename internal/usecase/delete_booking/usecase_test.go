package delete_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RoomBookingService/internal/infra/storage/booking"
)

var testNow = time.Date(2025, 11, 14, 15, 30, 0, 0, time.UTC)

type mockBookingRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Booking, error)
	deleteFn  func(ctx context.Context, id int64) (int64, error)
	deleted   []int64
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	m.deleted = append(m.deleted, id)
	return 1, nil
}

type mockAssociationRepo struct {
	err   error
	calls int
}

func (m *mockAssociationRepo) GetByID(_ context.Context, id int64) (*domain.Association, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Association{ID: id, Name: "Schackklubben", CodeHash: "hash-of-secret"}, nil
}

// plainVerifier сравнивает секрет с "хешем" вида "hash-of-<secret>"
type plainVerifier struct {
	calls int
}

func (v *plainVerifier) Verify(hash, secret string) bool {
	v.calls++
	return hash == "hash-of-"+secret
}

type mockTxManager struct{}

func (mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recorder struct {
	decisions []string
}

func (r *recorder) RecordBookingDecision(operation, outcome, kind string) {
	r.decisions = append(r.decisions, operation+"/"+outcome+"/"+kind)
}

type publishedEvent struct {
	key   string
	event domain.BookingEvent
}

// mockPublisher запоминает опубликованные события; err имитирует недоступный брокер
type mockPublisher struct {
	events []publishedEvent
	err    error
}

func (m *mockPublisher) PublishJSON(_ context.Context, key string, v any) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, publishedEvent{key: key, event: v.(domain.BookingEvent)})
	return nil
}

type fixture struct {
	bookings     *mockBookingRepo
	associations *mockAssociationRepo
	verifier     *plainVerifier
	recorder     *recorder
	publisher    *mockPublisher
	uc           *UseCase
}

func newFixture(booking *domain.Booking) *fixture {
	f := &fixture{
		bookings: &mockBookingRepo{
			getByIDFn: func(_ context.Context, id int64) (*domain.Booking, error) {
				if booking == nil || booking.ID != id {
					return nil, bookingRepo.ErrBookingNotFound
				}
				return booking, nil
			},
		},
		associations: &mockAssociationRepo{},
		verifier:     &plainVerifier{},
		recorder:     &recorder{},
		publisher:    &mockPublisher{},
	}
	f.uc = NewUseCase(f.bookings, f.associations, f.verifier, mockTxManager{}, f.recorder, f.publisher, fixedTime{testNow}, nopLogger{})
	return f
}

func futureBooking() *domain.Booking {
	return &domain.Booking{
		ID:              10,
		BookingDate:     time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
		RoomID:          1,
		RoomName:        "Wilmer 1",
		StartTime:       "14:00",
		EndTime:         "15:00",
		DurationMinutes: 60,
		AssociationID:   3,
		AssociationName: "Schackklubben",
	}
}

func ownerRequest(password string) *Request {
	return &Request{
		BookingID: 10,
		Requester: Requester{Role: string(domain.RoleAssociation), AssociationID: 3, Password: password},
	}
}

func TestExecute_OwnerDeletes(t *testing.T) {
	f := newFixture(futureBooking())

	resp, err := f.uc.Execute(context.Background(), ownerRequest("secret"))
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Wilmer 1", resp.RoomName)
	assert.Equal(t, "Schackklubben", resp.AssociationName)
	assert.Equal(t, []int64{10}, f.bookings.deleted)
	assert.Equal(t, []string{"delete/accepted/"}, f.recorder.decisions)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, domain.EventBookingDeleted, f.publisher.events[0].key)
	assert.Equal(t, "Schackklubben", f.publisher.events[0].event.AssociationName)
	assert.Equal(t, testNow, f.publisher.events[0].event.OccurredAt)
}

func TestExecute_AdminNeedsOwnerCredential(t *testing.T) {
	f := newFixture(futureBooking())
	req := &Request{
		BookingID: 10,
		Requester: Requester{Role: string(domain.RoleAdmin), Password: "secret"},
	}

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, f.verifier.calls)
}

func TestExecute_ForbiddenNeverVerifies(t *testing.T) {
	f := newFixture(futureBooking())
	req := ownerRequest("secret")
	req.Requester.AssociationID = 4

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.verifier.calls)
	assert.Zero(t, f.associations.calls)
	assert.Empty(t, f.bookings.deleted)
	assert.Equal(t, []string{"delete/rejected/forbidden"}, f.recorder.decisions)
}

func TestExecute_WrongPassword(t *testing.T) {
	f := newFixture(futureBooking())

	_, err := f.uc.Execute(context.Background(), ownerRequest("guess"))
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	assert.Empty(t, f.bookings.deleted)
}

func TestExecute_AlreadyPassed(t *testing.T) {
	booking := futureBooking()
	booking.BookingDate = time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)
	booking.StartTime = "14:00" // сегодня, но уже прошло (сейчас 15:30)

	f := newFixture(booking)

	_, err := f.uc.Execute(context.Background(), ownerRequest("secret"))
	assert.ErrorIs(t, err, domain.ErrAlreadyPassed)
	assert.Empty(t, f.bookings.deleted)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(futureBooking())
		req := ownerRequest("secret")
		req.BookingID = 0

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(nil)

		_, err := f.uc.Execute(context.Background(), ownerRequest("secret"))
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("association lookup fails", func(t *testing.T) {
		f := newFixture(futureBooking())
		f.associations.err = errors.New("connection reset")

		_, err := f.uc.Execute(context.Background(), ownerRequest("secret"))
		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Empty(t, f.bookings.deleted)
	})

	t.Run("delete fails", func(t *testing.T) {
		f := newFixture(futureBooking())
		f.bookings.deleteFn = func(context.Context, int64) (int64, error) {
			return 0, errors.New("disk full")
		}

		_, err := f.uc.Execute(context.Background(), ownerRequest("secret"))
		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, []string{"delete/error/"}, f.recorder.decisions)
	})
}
