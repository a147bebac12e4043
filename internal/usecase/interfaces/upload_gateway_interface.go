package interfaces

import "context"

// UploadResult references a stored object: a durable public URL plus the
// opaque key needed to delete it later.
type UploadResult struct {
	URL       string
	PublicKey string
}

// IUploadGateway abstracts the remote object store (S3).
//
// Contract for callers in the lifecycle engine:
//   - Upload failures on a required path (e.g. a quotation-bearing
//     transition) abort the whole transition.
//   - DeleteByKey is best-effort; callers log failures and move on.
type IUploadGateway interface {
	UploadDocument(ctx context.Context, data []byte, filename string) (UploadResult, error)
	UploadImage(ctx context.Context, data []byte, filename string) (UploadResult, error)
	DeleteByKey(ctx context.Context, key string) error
}
