package interfaces

import (
	"context"

	"homefix_api/internal/domain/entities"
)

// IPortfolioRepository abstracts DynamoDB persistence for Portfolio.
//
// CreateWithSequence allocates the next portfolio sequence number and
// inserts the entry in one all-or-nothing operation: either the counter
// advances and the entry exists, or neither happened. The repository fills
// in PortfolioID from the allocated sequence.
type IPortfolioRepository interface {
	CreateWithSequence(ctx context.Context, p entities.Portfolio) (entities.Portfolio, error)
	GetByID(ctx context.Context, id string) (entities.Portfolio, error)
	List(ctx context.Context) ([]entities.Portfolio, error)
	Delete(ctx context.Context, id string) error
}
