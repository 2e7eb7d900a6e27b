package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/internal/utils"
	"github.com/fleetflow/fleetflow/services/fleet/mocks"
)

func TestCreateVehicleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	h := NewFleetHandler(mockUC)

	t.Run("success", func(t *testing.T) {
		mockUC.EXPECT().
			CreateVehicle(gomock.Any(), gomock.Any()).
			Return(&models.Vehicle{ID: "v1", LicensePlate: "FL-2847", Status: models.VehicleStatusAvailable}, nil)

		c, rec := newTripContext(http.MethodPost, "/api/vehicles",
			`{"name":"Freightliner M2","license_plate":"FL-2847","type":"Truck","max_capacity":12000,"acquisition_cost":85000}`)
		require.NoError(t, h.CreateVehicle(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate plate maps to 400", func(t *testing.T) {
		mockUC.EXPECT().
			CreateVehicle(gomock.Any(), gomock.Any()).
			Return(nil, models.NewValidationError("license plate FL-2847 is already registered"))

		c, rec := newTripContext(http.MethodPost, "/api/vehicles",
			`{"name":"Dup","license_plate":"FL-2847","type":"Truck","max_capacity":1,"acquisition_cost":1}`)
		require.NoError(t, h.CreateVehicle(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp utils.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "already registered")
	})

	t.Run("malformed body", func(t *testing.T) {
		c, rec := newTripContext(http.MethodPost, "/api/vehicles", `{not json`)
		require.NoError(t, h.CreateVehicle(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateVehicleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	h := NewFleetHandler(mockUC)

	mockUC.EXPECT().
		UpdateVehicle(gomock.Any(), "v1", gomock.Any()).
		DoAndReturn(func(_ interface{}, id string, req models.VehicleUpdateRequest) (*models.Vehicle, error) {
			require.NotNil(t, req.Region)
			assert.Equal(t, "West", *req.Region)
			assert.Nil(t, req.Status)
			return &models.Vehicle{ID: id, Region: *req.Region}, nil
		})

	c, rec := newTripContext(http.MethodPatch, "/api/vehicles/v1", `{"region":"West"}`)
	c.SetParamNames("id")
	c.SetParamValues("v1")
	require.NoError(t, h.UpdateVehicle(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetVehicleCostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFleetUC(ctrl)
	h := NewFleetHandler(mockUC)

	mockUC.EXPECT().VehicleTotalCost(gomock.Any(), "v1").Return(455.0, nil)

	c, rec := newTripContext(http.MethodGet, "/api/vehicles/v1/cost", "")
	c.SetParamNames("id")
	c.SetParamValues("v1")
	require.NoError(t, h.GetVehicleCost(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "455")
}
