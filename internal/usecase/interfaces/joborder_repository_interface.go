package interfaces

import (
	"context"

	"homefix_api/internal/domain/entities"
)

// JobOrderFilter narrows List results. Zero values mean "no filter".
type JobOrderFilter struct {
	Status   string
	Archived *bool
}

// IJobOrderRepository abstracts DynamoDB persistence for JobOrder.
//
// Save is a full-item replace. Two concurrent saves on the same job order
// are resolved last-write-wins; there is no document-level locking.
type IJobOrderRepository interface {
	Create(ctx context.Context, j entities.JobOrder) (entities.JobOrder, error)
	GetByID(ctx context.Context, id string) (entities.JobOrder, error)
	List(ctx context.Context, filter JobOrderFilter) ([]entities.JobOrder, error)
	Save(ctx context.Context, j entities.JobOrder) (entities.JobOrder, error)
	Delete(ctx context.Context, id string) error
}
