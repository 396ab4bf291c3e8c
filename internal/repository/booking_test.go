package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/repository"
)

func TestSampleRepo_Seed(t *testing.T) {
	t.Parallel()

	repo := repository.NewSampleBookingRepo()
	ctx := context.Background()

	list, err := repo.List(ctx, repository.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "RJ001", list[0].ID)
	require.Equal(t, domain.StatusDelivered, list[0].Status)
	require.Equal(t, "RJ002", list[1].ID)
	require.Equal(t, domain.StatusInTransit, list[1].Status)
	require.Equal(t, "RJ003", list[2].ID)
	require.Equal(t, domain.PaymentUnpaid, list[2].PaymentStatus)
}

func TestBookingRepo_Create_AssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	repo := repository.NewSampleBookingRepo()
	ctx := context.Background()

	for _, want := range []string{"RJ004", "RJ005", "RJ006"} {
		b := &domain.Booking{PackageType: "parcel"}
		id, err := repo.Create(ctx, b)
		require.NoError(t, err)
		require.Equal(t, want, id)
		require.Equal(t, want, b.ID)
	}
	require.Equal(t, 6, repo.Len())
}

func TestBookingRepo_Create_SkipsTakenIDs(t *testing.T) {
	t.Parallel()

	repo := repository.NewBookingRepo(repository.SampleBookings(), 2)

	id, err := repo.Create(context.Background(), &domain.Booking{})
	require.NoError(t, err)
	require.Equal(t, "RJ004", id)
}

func TestBookingRepo_Create_ConcurrentUnique(t *testing.T) {
	t.Parallel()

	repo := repository.NewBookingRepo(nil, 1)
	ctx := context.Background()

	const n = 200
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := repo.Create(ctx, &domain.Booking{})
			if err == nil {
				ids <- id
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, n)
	require.Equal(t, n, repo.Len())
}

func TestBookingRepo_Get(t *testing.T) {
	t.Parallel()

	repo := repository.NewSampleBookingRepo()
	ctx := context.Background()

	b, err := repo.Get(ctx, "RJ002")
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Equal(t, "Alice Johnson", b.Sender.Name)

	b.Status = domain.StatusDelivered
	again, err := repo.Get(ctx, "RJ002")
	require.NoError(t, err)
	require.Equal(t, domain.StatusInTransit, again.Status, "returned booking must be a copy")

	missing, err := repo.Get(ctx, "RJ999")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestBookingRepo_List_Filter(t *testing.T) {
	t.Parallel()

	repo := repository.NewSampleBookingRepo()
	ctx := context.Background()

	pending, err := repo.List(ctx, repository.ListFilter{Status: domain.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "RJ003", pending[0].ID)

	unpaid, err := repo.List(ctx, repository.ListFilter{PaymentStatus: domain.PaymentUnpaid})
	require.NoError(t, err)
	require.Len(t, unpaid, 1)

	none, err := repo.List(ctx, repository.ListFilter{Status: domain.StatusDelivered, PaymentStatus: domain.PaymentUnpaid})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestBookingRepo_Update(t *testing.T) {
	t.Parallel()

	repo := repository.NewSampleBookingRepo()
	ctx := context.Background()

	updated, err := repo.Update(ctx, "RJ003", func(b *domain.Booking) error {
		b.Status = domain.StatusInTransit
		b.ID = "HIJACK"
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "RJ003", updated.ID)
	require.Equal(t, domain.StatusInTransit, updated.Status)

	stored, err := repo.Get(ctx, "RJ003")
	require.NoError(t, err)
	require.Equal(t, domain.StatusInTransit, stored.Status)
}

func TestBookingRepo_Update_ErrorLeavesBookingUntouched(t *testing.T) {
	t.Parallel()

	repo := repository.NewSampleBookingRepo()
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := repo.Update(ctx, "RJ003", func(b *domain.Booking) error {
		b.Status = domain.StatusDelivered
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := repo.Get(ctx, "RJ003")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status)
}

func TestBookingRepo_Update_Unknown(t *testing.T) {
	t.Parallel()

	repo := repository.NewSampleBookingRepo()
	called := false
	b, err := repo.Update(context.Background(), "RJ404", func(*domain.Booking) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.Nil(t, b)
	require.False(t, called)
}

func TestBookingRepo_CanceledContext(t *testing.T) {
	t.Parallel()

	repo := repository.NewSampleBookingRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, &domain.Booking{})
	require.ErrorIs(t, err, context.Canceled)
	_, err = repo.Get(ctx, "RJ001")
	require.ErrorIs(t, err, context.Canceled)
	_, err = repo.List(ctx, repository.ListFilter{})
	require.ErrorIs(t, err, context.Canceled)
	_, err = repo.Update(ctx, "RJ001", func(*domain.Booking) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 3, repo.Len())
}
