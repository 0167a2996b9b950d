package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmanbhs/barber-api/internal/domain"
	bookingRepo "github.com/salmanbhs/barber-api/internal/infra/storage/booking"
	"github.com/salmanbhs/barber-api/internal/service/bookings/models"
	"github.com/salmanbhs/barber-api/pkg/ptr"
)

// fakeBookingRepo тестовый репозиторий бронирований
type fakeBookingRepo struct {
	booking       *domain.Booking
	byPhone       []*domain.Booking
	byFilter      []*domain.Booking
	lastFilter    domain.BarberBookingsFilter
	updatedStatus domain.BookingStatus
	cancelReason  string
	cancelled     bool
	getErr        error
	updateErr     error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByCustomerPhone(_ context.Context, _ string) ([]*domain.Booking, error) {
	return f.byPhone, nil
}

func (f *fakeBookingRepo) GetByBarberWithFilter(_ context.Context, filter domain.BarberBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.byFilter, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelled = true
	f.cancelReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:                   42,
		CustomerName:         "Ahmed",
		CustomerPhone:        "+97333001122",
		BarberID:             1,
		ServiceIDs:           []int64{1},
		AppointmentDate:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:            "10:00",
		TotalDurationMinutes: 30,
		Status:               status,
		BarberName:           "Hasan",
		ServiceNames:         []string{"Haircut"},
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetCustomerBookings_EmptyPhone(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetCustomerBookings(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetBarberBookings_FilterConversion(t *testing.T) {
	repo := &fakeBookingRepo{byFilter: []*domain.Booking{testBooking(domain.StatusConfirmed)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetBarberBookings(context.Background(), &models.GetBarberBookingsRequest{
		BarberID: 1,
		Date:     ptr.Ptr("2026-09-14"),
		Status:   ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	// Фильтр должен дойти до репозитория в доменном виде
	assert.Equal(t, int64(1), repo.lastFilter.BarberID)
	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, "2026-09-14", repo.lastFilter.Date.Format(domain.DateFormat))
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
}

func TestGetBarberBookings_BadDate(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetBarberBookings(context.Background(), &models.GetBarberBookingsRequest{
		BarberID: 1,
		Date:     ptr.Ptr("14.09.2026"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{"pending -> confirmed", domain.StatusPending, "confirmed", nil},
		{"confirmed -> completed", domain.StatusConfirmed, "completed", nil},
		{"confirmed -> no_show", domain.StatusConfirmed, "no_show", nil},
		{"pending -> completed запрещен", domain.StatusPending, "completed", ErrInvalidTransition},
		{"completed -> confirmed запрещен", domain.StatusCompleted, "confirmed", ErrInvalidTransition},
		{"cancelled -> confirmed запрещен", domain.StatusCancelled, "confirmed", ErrInvalidTransition},
		{"неизвестный статус", domain.StatusPending, "approved", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: testBooking(tt.from)}
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.updatedStatus)
		})
	}
}

func TestCancel_ActiveBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		CancellationReason: "клиент попросил",
	})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "клиент попросил", repo.cancelReason)
}

func TestCancel_FinishedBookingRejected(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeBookingRepo{booking: testBooking(status)}
			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{})
			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.False(t, repo.cancelled)
		})
	}
}
