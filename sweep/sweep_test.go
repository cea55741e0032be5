package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"voyago/models"
	"voyago/store"

	"github.com/stretchr/testify/assert"
)

// fakeUserStore is an in-memory UserStore capturing Save calls.
type fakeUserStore struct {
	users      []models.User
	findAllErr error
	saveErrFor map[string]error
	saved      []string
}

func (f *fakeUserStore) FindByID(ctx context.Context, userID string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].UserID == userID {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return f.users, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) Save(ctx context.Context, user *models.User) error {
	if err := f.saveErrFor[user.UserID]; err != nil {
		return err
	}
	f.saved = append(f.saved, user.UserID)
	return nil
}

var sweepNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestSweeper(users *fakeUserStore) *Sweeper {
	return NewSweeper(users).WithClock(func() time.Time { return sweepNow })
}

func TestRunCompletesExpiredDestinationBooking(t *testing.T) {
	users := &fakeUserStore{users: []models.User{{
		UserID: "u1",
		Bookings: []models.DestinationBooking{
			{ID: "d1", Status: models.StatusUpcoming, DateStart: sweepNow.AddDate(0, 0, -1)},
		},
	}}}

	sum, err := newTestSweeper(users).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, sum.UsersScanned)
	assert.Equal(t, 1, sum.UsersUpdated)
	assert.Equal(t, 1, sum.DestinationBookingsUpdated)
	assert.Equal(t, 1, sum.TotalUpdated())
	assert.Equal(t, models.StatusCompleted, users.users[0].Bookings[0].Status)
}

func TestRunUsesCheckOutDateForHotelBookings(t *testing.T) {
	users := &fakeUserStore{users: []models.User{{
		UserID: "u1",
		HotelBookings: []models.HotelBooking{
			// stay started but check-out is tomorrow: must not complete
			{ID: "h1", Status: models.StatusOngoing,
				CheckInDate:  sweepNow.AddDate(0, 0, -1),
				CheckOutDate: sweepNow.AddDate(0, 0, 1)},
			{ID: "h2", Status: models.StatusOngoing,
				CheckInDate:  sweepNow.AddDate(0, 0, -3),
				CheckOutDate: sweepNow.AddDate(0, 0, -1)},
		},
	}}}

	sum, err := newTestSweeper(users).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, sum.HotelBookingsUpdated)
	assert.Equal(t, models.StatusOngoing, users.users[0].HotelBookings[0].Status)
	assert.Equal(t, models.StatusCompleted, users.users[0].HotelBookings[1].Status)
}

func TestRunLeavesExactTriggerTimeUntouched(t *testing.T) {
	users := &fakeUserStore{users: []models.User{{
		UserID: "u1",
		Bookings: []models.DestinationBooking{
			{ID: "d1", Status: models.StatusUpcoming, DateStart: sweepNow},
		},
	}}}

	sum, err := newTestSweeper(users).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, sum.TotalUpdated())
	assert.Empty(t, users.saved)
	assert.Equal(t, models.StatusUpcoming, users.users[0].Bookings[0].Status)
}

func TestRunSkipsTerminalBookings(t *testing.T) {
	expired := sweepNow.AddDate(0, 0, -5)
	users := &fakeUserStore{users: []models.User{{
		UserID: "u1",
		Bookings: []models.DestinationBooking{
			{ID: "d1", Status: models.StatusCancelled, DateStart: expired},
			{ID: "d2", Status: models.StatusCompleted, DateStart: expired},
		},
	}}}

	sum, err := newTestSweeper(users).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, sum.TotalUpdated())
	assert.Equal(t, 0, sum.UsersUpdated)
	assert.Empty(t, users.saved)
	assert.Equal(t, models.StatusCancelled, users.users[0].Bookings[0].Status)
	assert.Equal(t, models.StatusCompleted, users.users[0].Bookings[1].Status)
}

func TestRunSavesEachChangedUserOnce(t *testing.T) {
	expired := sweepNow.AddDate(0, 0, -2)
	users := &fakeUserStore{users: []models.User{{
		UserID: "u1",
		Bookings: []models.DestinationBooking{
			{ID: "d1", Status: models.StatusUpcoming, DateStart: expired},
			{ID: "d2", Status: models.StatusOngoing, DateStart: expired},
		},
		HotelBookings: []models.HotelBooking{
			{ID: "h1", Status: models.StatusUpcoming, CheckOutDate: expired},
		},
		PackageBookings: []models.PackageBooking{
			{ID: "p1", Status: models.StatusUpcoming, DateStart: expired},
		},
	}}}

	sum, err := newTestSweeper(users).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, sum.DestinationBookingsUpdated)
	assert.Equal(t, 1, sum.HotelBookingsUpdated)
	assert.Equal(t, 1, sum.PackageBookingsUpdated)
	assert.Equal(t, 4, sum.TotalUpdated())
	assert.Equal(t, []string{"u1"}, users.saved)
}

func TestRunIsIdempotent(t *testing.T) {
	users := &fakeUserStore{users: []models.User{{
		UserID: "u1",
		Bookings: []models.DestinationBooking{
			{ID: "d1", Status: models.StatusUpcoming, DateStart: sweepNow.AddDate(0, 0, -1)},
		},
	}}}

	sweeper := newTestSweeper(users)

	first, err := sweeper.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, first.TotalUpdated())

	second, err := sweeper.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, second.TotalUpdated())
	assert.Equal(t, 0, second.UsersUpdated)
	assert.Len(t, users.saved, 1)
}

func TestRunContinuesPastFailingUser(t *testing.T) {
	expired := sweepNow.AddDate(0, 0, -1)
	users := &fakeUserStore{
		users: []models.User{
			{UserID: "u1", Bookings: []models.DestinationBooking{
				{ID: "d1", Status: models.StatusUpcoming, DateStart: expired},
			}},
			{UserID: "u2", Bookings: []models.DestinationBooking{
				{ID: "d2", Status: models.StatusUpcoming, DateStart: expired},
			}},
		},
		saveErrFor: map[string]error{"u1": errors.New("write conflict")},
	}

	sum, err := newTestSweeper(users).Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, sum.UsersScanned)
	assert.Equal(t, 1, sum.UsersUpdated)
	assert.Equal(t, 1, sum.Errors)
	assert.Equal(t, 1, sum.DestinationBookingsUpdated)
	assert.Equal(t, []string{"u2"}, users.saved)
}

func TestRunPropagatesLoadFailure(t *testing.T) {
	users := &fakeUserStore{findAllErr: errors.New("connection reset")}

	_, err := newTestSweeper(users).Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load users")
}
