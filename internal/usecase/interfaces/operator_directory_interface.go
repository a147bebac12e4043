package interfaces

import "context"

// IOperatorDirectory resolves operator references to display names for
// read paths. The admin/session service owns the underlying accounts; this
// is a read-only lookup against its table.
type IOperatorDirectory interface {
	DisplayName(ctx context.Context, operatorID string) (string, error)
}
