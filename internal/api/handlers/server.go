// Package handlers implements the JSON API handlers.
//
// Handlers bind and validate the wire payloads, delegate specimen
// writes to the usecase layer, and push failures through c.Error() so
// the error-handler middleware renders one consistent body.
package handlers

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kurty-byte/plant-sampling/ent"
	"github.com/Kurty-byte/plant-sampling/internal/usecase"
)

// Server implements all API handlers.
type Server struct {
	client     *ent.Client
	pool       *pgxpool.Pool
	createUC   *usecase.CreateSpecimenUseCase
	updateUC   *usecase.UpdateSpecimenUseCase
	deleteUC   *usecase.DeleteSpecimenUseCase
	growthUC   *usecase.RecordGrowthUseCase
	refDelUC   *usecase.DeleteReferenceUseCase
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient *ent.Client
	Pool      *pgxpool.Pool
	CreateUC  *usecase.CreateSpecimenUseCase
	UpdateUC  *usecase.UpdateSpecimenUseCase
	DeleteUC  *usecase.DeleteSpecimenUseCase
	GrowthUC  *usecase.RecordGrowthUseCase
	RefDelUC  *usecase.DeleteReferenceUseCase
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:   deps.EntClient,
		pool:     deps.Pool,
		createUC: deps.CreateUC,
		updateUC: deps.UpdateUC,
		deleteUC: deps.DeleteUC,
		growthUC: deps.GrowthUC,
		refDelUC: deps.RefDelUC,
	}
}

// newEntityID generates a prefixed UUID v7 for handler-created rows.
func newEntityID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return prefix + "-" + uuid.New().String()
	}
	return prefix + "-" + id.String()
}
