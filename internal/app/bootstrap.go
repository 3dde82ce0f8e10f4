// Package app is the composition root: manual DI, no Wire/Dig.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Kurty-byte/plant-sampling/internal/api/handlers"
	"github.com/Kurty-byte/plant-sampling/internal/audit"
	"github.com/Kurty-byte/plant-sampling/internal/config"
	"github.com/Kurty-byte/plant-sampling/internal/infrastructure"
	"github.com/Kurty-byte/plant-sampling/internal/usecase"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
}

// Bootstrap initializes all dependencies.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	recorder := audit.NewRecorder()
	server := handlers.NewServer(handlers.ServerDeps{
		EntClient: db.EntClient,
		Pool:      db.Pool,
		CreateUC:  usecase.NewCreateSpecimenUseCase(db.EntClient, recorder),
		UpdateUC:  usecase.NewUpdateSpecimenUseCase(db.EntClient, recorder),
		DeleteUC:  usecase.NewDeleteSpecimenUseCase(db.EntClient, recorder),
		GrowthUC:  usecase.NewRecordGrowthUseCase(db.EntClient, recorder),
		RefDelUC:  usecase.NewDeleteReferenceUseCase(db.EntClient),
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server),
		DB:     db,
	}, nil
}
