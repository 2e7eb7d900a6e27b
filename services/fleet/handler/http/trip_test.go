package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet/mocks"
)

func newTripContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	h := NewFleetHandler(mockUC)

	t.Run("success", func(t *testing.T) {
		mockUC.EXPECT().
			CreateTrip(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, draft models.TripDraft) (*models.Trip, error) {
				assert.Equal(t, "v1", draft.VehicleID)
				assert.Equal(t, 1500.0, draft.CargoWeight)
				return &models.Trip{ID: "t1", VehicleID: draft.VehicleID, Status: models.TripStatusDraft}, nil
			})

		c, rec := newTripContext(http.MethodPost, "/api/trips",
			`{"vehicle_id":"v1","driver_id":"d1","origin":"A","destination":"B","cargo_weight":1500}`)
		require.NoError(t, h.CreateTrip(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp utils.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		mockUC.EXPECT().
			CreateTrip(gomock.Any(), gomock.Any()).
			Return(nil, models.NewValidationError("cargo weight 2000 kg exceeds vehicle capacity 1800 kg"))

		c, rec := newTripContext(http.MethodPost, "/api/trips",
			`{"vehicle_id":"v1","driver_id":"d1","origin":"A","destination":"B","cargo_weight":2000}`)
		require.NoError(t, h.CreateTrip(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown vehicle maps to 404", func(t *testing.T) {
		mockUC.EXPECT().
			CreateTrip(gomock.Any(), gomock.Any()).
			Return(nil, models.NewNotFoundError("vehicle", "missing"))

		c, rec := newTripContext(http.MethodPost, "/api/trips",
			`{"vehicle_id":"missing","driver_id":"d1","origin":"A","destination":"B"}`)
		require.NoError(t, h.CreateTrip(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDispatchTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	h := NewFleetHandler(mockUC)

	t.Run("success", func(t *testing.T) {
		mockUC.EXPECT().
			DispatchTrip(gomock.Any(), "t1").
			Return(&models.Trip{ID: "t1", Status: models.TripStatusDispatched}, nil)

		c, rec := newTripContext(http.MethodPost, "/api/trips/t1/dispatch", "")
		c.SetParamNames("id")
		c.SetParamValues("t1")
		require.NoError(t, h.DispatchTrip(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("state conflict maps to 409", func(t *testing.T) {
		mockUC.EXPECT().
			DispatchTrip(gomock.Any(), "t1").
			Return(nil, models.NewStateError("Draft", "Dispatched"))

		c, rec := newTripContext(http.MethodPost, "/api/trips/t1/dispatch", "")
		c.SetParamNames("id")
		c.SetParamValues("t1")
		require.NoError(t, h.DispatchTrip(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCompleteTripHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	h := NewFleetHandler(mockUC)

	end := 50250.0
	mockUC.EXPECT().
		CompleteTrip(gomock.Any(), "t1", end).
		Return(&models.Trip{ID: "t1", Status: models.TripStatusCompleted, EndOdometer: &end}, nil)

	c, rec := newTripContext(http.MethodPost, "/api/trips/t1/complete", `{"end_odometer":50250}`)
	c.SetParamNames("id")
	c.SetParamValues("t1")
	require.NoError(t, h.CompleteTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
