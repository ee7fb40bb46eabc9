package ports

import "context"

// BlobStore keeps label documents addressed by name. Writing an existing name
// overwrites it.
type BlobStore interface {
	// Write stores data under name and returns its public URL.
	Write(ctx context.Context, name string, data []byte) (url string, err error)
}
