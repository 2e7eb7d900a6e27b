package repository

import (
	"time"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ts(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func f64(v float64) *float64 { return &v }

// Seed loads the demo fleet into the store. Intended for an empty store;
// cross-entity statuses in the dataset are mutually consistent (every
// dispatched trip has its vehicle and driver on trip, the in-progress
// maintenance log has its vehicle in the shop).
func Seed(s *Store) {
	_ = s.Execute(func(tx *Tx) error {
		freightliner := tx.CreateVehicle(models.Vehicle{
			Name: "Freightliner M2", LicensePlate: "FL-2847", Type: models.VehicleTypeTruck,
			MaxCapacity: 12000, Odometer: 145200, Status: models.VehicleStatusOnTrip,
			Region: "North", LastServiceDate: datePtr(2026, 1, 15), AcquisitionCost: 85000,
			CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		sprinter := tx.CreateVehicle(models.Vehicle{
			Name: "Mercedes Sprinter", LicensePlate: "SP-1093", Type: models.VehicleTypeVan,
			MaxCapacity: 1800, Odometer: 67300, Status: models.VehicleStatusAvailable,
			Region: "East", LastServiceDate: datePtr(2026, 2, 1), AcquisitionCost: 42000,
			CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		transit := tx.CreateVehicle(models.Vehicle{
			Name: "Ford Transit", LicensePlate: "FT-5521", Type: models.VehicleTypeVan,
			MaxCapacity: 2200, Odometer: 89100, Status: models.VehicleStatusAvailable,
			Region: "North", LastServiceDate: datePtr(2026, 1, 20), AcquisitionCost: 38000,
			CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		isuzu := tx.CreateVehicle(models.Vehicle{
			Name: "Isuzu NPR", LicensePlate: "IS-7764", Type: models.VehicleTypeTruck,
			MaxCapacity: 5500, Odometer: 201300, Status: models.VehicleStatusInShop,
			Region: "West", LastServiceDate: datePtr(2026, 2, 10), AcquisitionCost: 55000,
			CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		pcx := tx.CreateVehicle(models.Vehicle{
			Name: "Honda PCX 160", LicensePlate: "HC-0412", Type: models.VehicleTypeBike,
			MaxCapacity: 30, Odometer: 12400, Status: models.VehicleStatusAvailable,
			Region: "Central", LastServiceDate: datePtr(2026, 2, 5), AcquisitionCost: 4500,
			CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		volvo := tx.CreateVehicle(models.Vehicle{
			Name: "Volvo FH16", LicensePlate: "VL-9931", Type: models.VehicleTypeTruck,
			MaxCapacity: 25000, Odometer: 312000, Status: models.VehicleStatusOnTrip,
			Region: "South", LastServiceDate: datePtr(2025, 12, 28), AcquisitionCost: 120000,
			CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		tx.CreateVehicle(models.Vehicle{
			Name: "Peugeot Partner", LicensePlate: "PG-3385", Type: models.VehicleTypeVan,
			MaxCapacity: 800, Odometer: 45600, Status: models.VehicleStatusRetired,
			Region: "East", LastServiceDate: datePtr(2025, 11, 10), AcquisitionCost: 28000,
			CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		nmax := tx.CreateVehicle(models.Vehicle{
			Name: "Yamaha NMAX", LicensePlate: "YM-6678", Type: models.VehicleTypeBike,
			MaxCapacity: 25, Odometer: 8900, Status: models.VehicleStatusOnTrip,
			Region: "Central", LastServiceDate: datePtr(2026, 1, 30), AcquisitionCost: 3800,
			CreatedAt: ts(2026, 2, 1, 8, 0),
		})

		mercer := tx.CreateDriver(models.Driver{
			Name: "Alex Mercer", Email: "alex.m@fleet.io", Phone: "+1-555-0101",
			LicenseNumber: "DL-88421", LicenseExpiry: date(2027, 6, 15),
			LicenseCategories: []models.VehicleType{models.VehicleTypeTruck, models.VehicleTypeVan},
			Status:            models.DriverStatusOnTrip, SafetyScore: 92, TripsCompleted: 214,
			JoinDate: date(2023, 3, 10), CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		chen := tx.CreateDriver(models.Driver{
			Name: "Sarah Chen", Email: "sarah.c@fleet.io", Phone: "+1-555-0102",
			LicenseNumber: "DL-55739", LicenseExpiry: date(2026, 3, 1),
			LicenseCategories: []models.VehicleType{models.VehicleTypeVan, models.VehicleTypeBike},
			Status:            models.DriverStatusOnDuty, SafetyScore: 97, TripsCompleted: 182,
			JoinDate: date(2023, 7, 22), CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		johnson := tx.CreateDriver(models.Driver{
			Name: "Marcus Johnson", Email: "marcus.j@fleet.io", Phone: "+1-555-0103",
			LicenseNumber: "DL-91005", LicenseExpiry: date(2026, 9, 20),
			LicenseCategories: []models.VehicleType{models.VehicleTypeTruck, models.VehicleTypeVan},
			Status:            models.DriverStatusOnTrip, SafetyScore: 85, TripsCompleted: 156,
			JoinDate: date(2024, 1, 5), CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		tx.CreateDriver(models.Driver{
			Name: "Priya Patel", Email: "priya.p@fleet.io", Phone: "+1-555-0104",
			LicenseNumber: "DL-33217", LicenseExpiry: date(2025, 12, 1),
			LicenseCategories: []models.VehicleType{models.VehicleTypeVan},
			Status:            models.DriverStatusOffDuty, SafetyScore: 78, TripsCompleted: 93,
			JoinDate: date(2024, 6, 18), CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		nakamura := tx.CreateDriver(models.Driver{
			Name: "Tom Nakamura", Email: "tom.n@fleet.io", Phone: "+1-555-0105",
			LicenseNumber: "DL-67842", LicenseExpiry: date(2027, 11, 30),
			LicenseCategories: []models.VehicleType{models.VehicleTypeBike},
			Status:            models.DriverStatusOnTrip, SafetyScore: 95, TripsCompleted: 310,
			JoinDate: date(2022, 11, 1), CreatedAt: ts(2026, 2, 1, 8, 0),
		})
		tx.CreateDriver(models.Driver{
			Name: "Elena Vasquez", Email: "elena.v@fleet.io", Phone: "+1-555-0106",
			LicenseNumber: "DL-12094", LicenseExpiry: date(2026, 5, 14),
			LicenseCategories: []models.VehicleType{models.VehicleTypeTruck, models.VehicleTypeVan, models.VehicleTypeBike},
			Status:            models.DriverStatusSuspended, SafetyScore: 62, TripsCompleted: 45,
			JoinDate: date(2025, 2, 20), CreatedAt: ts(2026, 2, 1, 8, 0),
		})

		t1d := ts(2026, 2, 20, 9, 30)
		trip1 := tx.CreateTrip(models.Trip{
			VehicleID: freightliner.ID, DriverID: mercer.ID,
			Origin: "Warehouse A, Chicago", Destination: "Distribution Center, Detroit",
			CargoWeight: 8500, CargoDescription: "Electronics Shipment",
			Status: models.TripStatusDispatched, CreatedAt: ts(2026, 2, 20, 8, 0),
			DispatchedAt: &t1d, StartOdometer: f64(145000),
		})
		t2d := ts(2026, 2, 19, 16, 0)
		trip2 := tx.CreateTrip(models.Trip{
			VehicleID: volvo.ID, DriverID: johnson.ID,
			Origin: "Port Terminal, Houston", Destination: "Mega Depot, Dallas",
			CargoWeight: 22000, CargoDescription: "Steel Components",
			Status: models.TripStatusDispatched, CreatedAt: ts(2026, 2, 19, 14, 0),
			DispatchedAt: &t2d, StartOdometer: f64(311500),
		})
		t3d := ts(2026, 2, 21, 7, 15)
		trip3 := tx.CreateTrip(models.Trip{
			VehicleID: nmax.ID, DriverID: nakamura.ID,
			Origin: "Local Hub, Central", Destination: "Customer, 42 Elm St",
			CargoWeight: 12, CargoDescription: "Express Package",
			Status: models.TripStatusDispatched, CreatedAt: ts(2026, 2, 21, 7, 0),
			DispatchedAt: &t3d, StartOdometer: f64(8850),
		})
		t4d := ts(2026, 2, 18, 11, 0)
		t4c := ts(2026, 2, 18, 15, 30)
		trip4 := tx.CreateTrip(models.Trip{
			VehicleID: sprinter.ID, DriverID: chen.ID,
			Origin: "Fulfillment Center", Destination: "Retail Store, Midtown",
			CargoWeight: 1200, CargoDescription: "Apparel Boxes",
			Status: models.TripStatusCompleted, CreatedAt: ts(2026, 2, 18, 10, 0),
			DispatchedAt: &t4d, CompletedAt: &t4c,
			StartOdometer: f64(67000), EndOdometer: f64(67280),
		})
		t5d := ts(2026, 2, 17, 7, 0)
		t5c := ts(2026, 2, 17, 12, 0)
		trip5 := tx.CreateTrip(models.Trip{
			VehicleID: transit.ID, DriverID: mercer.ID,
			Origin: "Supplier Dock B", Destination: "Assembly Plant",
			CargoWeight: 1900, CargoDescription: "Auto Parts",
			Status: models.TripStatusCompleted, CreatedAt: ts(2026, 2, 17, 6, 0),
			DispatchedAt: &t5d, CompletedAt: &t5c,
			StartOdometer: f64(88700), EndOdometer: f64(89050),
		})
		tx.CreateTrip(models.Trip{
			VehicleID: pcx.ID, DriverID: nakamura.ID,
			Origin: "Pharmacy Central", Destination: "Clinic, Oak Ave",
			CargoWeight: 5, CargoDescription: "Medical Supplies",
			Status: models.TripStatusDraft, CreatedAt: ts(2026, 2, 21, 6, 30),
		})

		tx.CreateMaintenanceLog(models.MaintenanceLog{
			VehicleID: isuzu.ID, Type: "Engine Repair",
			Description: "Replace timing belt and water pump", Cost: 2800,
			Date: date(2026, 2, 10), Status: models.MaintenanceStatusInProgress,
		})
		tx.CreateMaintenanceLog(models.MaintenanceLog{
			VehicleID: freightliner.ID, Type: "Oil Change",
			Description: "Routine oil and filter change at 145k", Cost: 320,
			Date: date(2026, 1, 15), Status: models.MaintenanceStatusCompleted,
		})
		tx.CreateMaintenanceLog(models.MaintenanceLog{
			VehicleID: volvo.ID, Type: "Tire Rotation",
			Description: "Rotate all 18 tires, replace 2 worn", Cost: 4500,
			Date: date(2025, 12, 28), Status: models.MaintenanceStatusCompleted,
		})
		tx.CreateMaintenanceLog(models.MaintenanceLog{
			VehicleID: sprinter.ID, Type: "Brake Inspection",
			Description: "Inspect pads and rotors, replace front pads", Cost: 650,
			Date: date(2026, 2, 1), Status: models.MaintenanceStatusCompleted,
		})
		tx.CreateMaintenanceLog(models.MaintenanceLog{
			VehicleID: transit.ID, Type: "Scheduled Service",
			Description: "90k km full service with filters, fluids and belt check", Cost: 1100,
			Date: date(2026, 2, 22), Status: models.MaintenanceStatusScheduled,
		})

		tx.CreateFuelLog(models.FuelLog{VehicleID: freightliner.ID, TripID: trip1.ID, Liters: 180, Cost: 324, Date: date(2026, 2, 20)})
		tx.CreateFuelLog(models.FuelLog{VehicleID: volvo.ID, TripID: trip2.ID, Liters: 420, Cost: 756, Date: date(2026, 2, 19)})
		tx.CreateFuelLog(models.FuelLog{VehicleID: sprinter.ID, TripID: trip4.ID, Liters: 35, Cost: 63, Date: date(2026, 2, 18)})
		tx.CreateFuelLog(models.FuelLog{VehicleID: transit.ID, TripID: trip5.ID, Liters: 42, Cost: 75.6, Date: date(2026, 2, 17)})
		tx.CreateFuelLog(models.FuelLog{VehicleID: nmax.ID, TripID: trip3.ID, Liters: 4, Cost: 7.2, Date: date(2026, 2, 21)})
		tx.CreateFuelLog(models.FuelLog{VehicleID: pcx.ID, Liters: 3.5, Cost: 6.3, Date: date(2026, 2, 15)})
		tx.CreateFuelLog(models.FuelLog{VehicleID: freightliner.ID, Liters: 190, Cost: 342, Date: date(2026, 2, 12)})
		tx.CreateFuelLog(models.FuelLog{VehicleID: volvo.ID, Liters: 400, Cost: 720, Date: date(2026, 2, 8)})

		return nil
	})
}
