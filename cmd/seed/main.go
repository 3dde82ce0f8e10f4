// Package main provides reference data seeding for the plant sampling
// service. Seeding is idempotent: rows carry fixed ids and existing
// ones are skipped.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/internal/config"
	"github.com/Kurty-byte/plant-sampling/internal/infrastructure"
	"github.com/Kurty-byte/plant-sampling/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Schema migration is expected to have been run before seeding.

	if err := seedLocations(ctx, client); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	if err := seedConditions(ctx, client); err != nil {
		return fmt.Errorf("seed conditions: %w", err)
	}
	if err := seedResearchers(ctx, client); err != nil {
		return fmt.Errorf("seed researchers: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

type seedLocation struct {
	ID        string
	Latitude  float64
	Longitude float64
	Region    string
	Country   string
	SiteType  location.SiteType
}

func seedLocations(ctx context.Context, client *ent.Client) error {
	rows := []seedLocation{
		{ID: "loc-seed-luzon-ridge", Latitude: 16.4023, Longitude: 120.5960,
			Region: "Cordillera", Country: "Philippines", SiteType: location.SiteTypeMountain},
		{ID: "loc-seed-mindoro-wetland", Latitude: 13.2000, Longitude: 121.0500,
			Region: "Mimaropa", Country: "Philippines", SiteType: location.SiteTypeWetland},
		{ID: "loc-seed-palawan-forest", Latitude: 9.8349, Longitude: 118.7384,
			Region: "Palawan", Country: "Philippines", SiteType: location.SiteTypeForest},
	}
	for _, r := range rows {
		_, err := client.Location.Create().
			SetID(r.ID).
			SetLatitude(r.Latitude).
			SetLongitude(r.Longitude).
			SetRegion(r.Region).
			SetCountry(r.Country).
			SetSiteType(r.SiteType).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Location already exists, skipping", zap.String("id", r.ID))
				continue
			}
			return fmt.Errorf("create location %s: %w", r.ID, err)
		}
		logger.Info("Seeded location", zap.String("id", r.ID))
	}
	return nil
}

type seedCondition struct {
	ID          string
	Temperature float64
	Humidity    float64
	Altitude    float64
	SoilPh      float64
	SoilType    environmentalcondition.SoilType
	Nutrients   map[string]interface{}
}

func seedConditions(ctx context.Context, client *ent.Client) error {
	rows := []seedCondition{
		{ID: "cond-seed-ridge-dry", Temperature: 18.5, Humidity: 62, Altitude: 1450,
			SoilPh: 5.8, SoilType: environmentalcondition.SoilTypeLoamy,
			Nutrients: map[string]interface{}{"nitrogen": "medium", "phosphorus": "low"}},
		{ID: "cond-seed-wetland-wet", Temperature: 29.0, Humidity: 91, Altitude: 12,
			SoilPh: 6.9, SoilType: environmentalcondition.SoilTypePeaty,
			Nutrients: map[string]interface{}{"nitrogen": "high", "potassium": "medium"}},
	}
	for _, r := range rows {
		_, err := client.EnvironmentalCondition.Create().
			SetID(r.ID).
			SetTemperature(r.Temperature).
			SetHumidity(r.Humidity).
			SetAltitude(r.Altitude).
			SetSoilPh(r.SoilPh).
			SetSoilType(r.SoilType).
			SetSoilNutrients(r.Nutrients).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Condition already exists, skipping", zap.String("id", r.ID))
				continue
			}
			return fmt.Errorf("create condition %s: %w", r.ID, err)
		}
		logger.Info("Seeded condition", zap.String("id", r.ID))
	}
	return nil
}

type seedResearcher struct {
	ID          string
	Name        string
	Email       string
	Affiliation string
}

func seedResearchers(ctx context.Context, client *ent.Client) error {
	rows := []seedResearcher{
		{ID: "res-seed-demo-lead", Name: "Maria Santos", Email: "maria.santos@example.org",
			Affiliation: "Field Botany Group"},
		{ID: "res-seed-demo-tech", Name: "Jun Dela Cruz", Email: "jun.delacruz@example.org",
			Affiliation: "Field Botany Group"},
	}
	for _, r := range rows {
		_, err := client.Researcher.Create().
			SetID(r.ID).
			SetName(r.Name).
			SetEmail(r.Email).
			SetAffiliation(r.Affiliation).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Researcher already exists, skipping", zap.String("id", r.ID))
				continue
			}
			return fmt.Errorf("create researcher %s: %w", r.ID, err)
		}
		logger.Info("Seeded researcher", zap.String("id", r.ID))
	}
	return nil
}
