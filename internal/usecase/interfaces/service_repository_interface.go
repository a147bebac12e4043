package interfaces

import (
	"context"

	"homefix_api/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Delete(ctx context.Context, id string) error
}
