// Package sweep brings every user's booking statuses up to date with
// wall-clock time. Bookings are embedded sub-documents with no
// per-booking timers, so the only way to complete them on schedule is a
// periodic full scan. The pass is idempotent: re-running it when nothing
// has expired is a no-op.
package sweep

import (
	"context"
	"fmt"
	"log"
	"time"

	"voyago/bookings"
	"voyago/models"
	"voyago/store"
)

// Summary reports one full pass over all users.
type Summary struct {
	UsersScanned               int `json:"usersScanned"`
	UsersUpdated               int `json:"usersUpdated"`
	DestinationBookingsUpdated int `json:"destinationBookingsUpdated"`
	HotelBookingsUpdated       int `json:"hotelBookingsUpdated"`
	PackageBookingsUpdated     int `json:"packageBookingsUpdated"`
	Errors                     int `json:"errors"`
}

// TotalUpdated is the number of bookings transitioned across all variants.
func (s Summary) TotalUpdated() int {
	return s.DestinationBookingsUpdated + s.HotelBookingsUpdated + s.PackageBookingsUpdated
}

// Sweeper runs the status reconciliation pass.
type Sweeper struct {
	users store.UserStore
	now   func() time.Time
}

func NewSweeper(users store.UserStore) *Sweeper {
	return &Sweeper{users: users, now: time.Now}
}

// WithClock overrides the sweeper clock. Intended for tests.
func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// reconcile transitions every upcoming/ongoing booking whose trigger date
// is strictly before now to completed, in place. The trigger date is
// dateStart for destination and package bookings and checkOutDate for
// hotel bookings. Returns per-variant counts.
func reconcile(user *models.User, now time.Time) (dest, hotel, pkg int) {
	for i := range user.Bookings {
		b := &user.Bookings[i]
		if (b.Status == models.StatusUpcoming || b.Status == models.StatusOngoing) && b.DateStart.Before(now) {
			b.Status = models.StatusCompleted
			dest++
		}
	}
	for i := range user.HotelBookings {
		b := &user.HotelBookings[i]
		if (b.Status == models.StatusUpcoming || b.Status == models.StatusOngoing) && b.CheckOutDate.Before(now) {
			b.Status = models.StatusCompleted
			hotel++
		}
	}
	for i := range user.PackageBookings {
		b := &user.PackageBookings[i]
		if (b.Status == models.StatusUpcoming || b.Status == models.StatusOngoing) && b.DateStart.Before(now) {
			b.Status = models.StatusCompleted
			pkg++
		}
	}
	return dest, hotel, pkg
}

// Run executes one full pass. A user whose bookings changed is saved
// exactly once, batching all three sequences into a single document
// write. A failure on one user is logged and skipped so the rest of the
// pass still runs; the next scheduled pass retries naturally.
func (s *Sweeper) Run(ctx context.Context) (Summary, error) {
	now := s.now()

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load users: %w", err)
	}

	var sum Summary
	for i := range users {
		user := &users[i]
		sum.UsersScanned++

		dest, hotel, pkg := reconcile(user, now)
		if dest+hotel+pkg == 0 {
			continue
		}

		if err := s.users.Save(ctx, user); err != nil {
			log.Printf("Sweep: failed to save user %s: %v", user.UserID, err)
			sum.Errors++
			continue
		}

		sum.UsersUpdated++
		sum.DestinationBookingsUpdated += dest
		sum.HotelBookingsUpdated += hotel
		sum.PackageBookingsUpdated += pkg

		bookings.BroadcastUserUpdate(user.UserID)
	}

	log.Printf("Sweep completed: %d bookings updated across %d users (destination=%d hotel=%d package=%d errors=%d)",
		sum.TotalUpdated(), sum.UsersUpdated,
		sum.DestinationBookingsUpdated, sum.HotelBookingsUpdated, sum.PackageBookingsUpdated, sum.Errors)

	return sum, nil
}
