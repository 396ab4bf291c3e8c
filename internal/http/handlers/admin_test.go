package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rjcouriers-service-booking/internal/apperr"
	"rjcouriers-service-booking/internal/domain"
	"rjcouriers-service-booking/internal/http/handlers"
)

type stubAdminUsecase struct {
	statsFn     func(context.Context) (domain.Stats, error)
	setStatusFn func(context.Context, string, domain.ShipmentStatus) (domain.Booking, error)
}

func (s *stubAdminUsecase) Stats(ctx context.Context) (domain.Stats, error) {
	return s.statsFn(ctx)
}

func (s *stubAdminUsecase) SetStatus(ctx context.Context, id string, st domain.ShipmentStatus) (domain.Booking, error) {
	return s.setStatusFn(ctx, id, st)
}

func TestAdminHandler_Stats(t *testing.T) {
	t.Parallel()

	uc := &stubAdminUsecase{
		statsFn: func(context.Context) (domain.Stats, error) {
			return domain.Stats{Total: 3, Pending: 1, InTransit: 1, Delivered: 1, Paid: 2}, nil
		},
	}
	h := handlers.NewAdminHandler(testLogger(), uc)

	rr := httptest.NewRecorder()
	h.Stats(rr, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"total":3,"pending":1,"in_transit":1,"delivered":1,"paid":2}`, rr.Body.String())
}

func TestAdminHandler_Stats_Error(t *testing.T) {
	t.Parallel()

	uc := &stubAdminUsecase{
		statsFn: func(context.Context) (domain.Stats, error) {
			return domain.Stats{}, errors.New("boom")
		},
	}
	h := handlers.NewAdminHandler(testLogger(), uc)

	rr := httptest.NewRecorder()
	h.Stats(rr, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAdminHandler_SetStatus_OK(t *testing.T) {
	t.Parallel()

	uc := &stubAdminUsecase{
		setStatusFn: func(_ context.Context, id string, st domain.ShipmentStatus) (domain.Booking, error) {
			require.Equal(t, "RJ003", id)
			require.Equal(t, domain.StatusDelivered, st)
			b := sampleBooking()
			b.Status = st
			return b, nil
		},
	}
	h := handlers.NewAdminHandler(testLogger(), uc)

	req := httptest.NewRequest(http.MethodPatch, "/admin/bookings/RJ003/status", strings.NewReader(`{"status":"delivered"}`))
	rr := httptest.NewRecorder()
	h.SetStatus(rr, withURLParam(req, "id", "RJ003"))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, "Booking RJ003 status updated to delivered", resp.Message)
}

func TestAdminHandler_SetStatus_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"unknown booking", apperr.ErrNotFound, http.StatusNotFound},
		{"bad status", apperr.ErrInvalid, http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &stubAdminUsecase{
				setStatusFn: func(context.Context, string, domain.ShipmentStatus) (domain.Booking, error) {
					return domain.Booking{}, tt.err
				},
			}
			h := handlers.NewAdminHandler(testLogger(), uc)

			req := httptest.NewRequest(http.MethodPatch, "/admin/bookings/RJ009/status", strings.NewReader(`{"status":"lost"}`))
			rr := httptest.NewRecorder()
			h.SetStatus(rr, withURLParam(req, "id", "RJ009"))

			require.Equal(t, tt.wantCode, rr.Code)
		})
	}
}
