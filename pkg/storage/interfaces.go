package storage

import (
	"io"
	"time"
)

type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStorage is the blob-store surface the services depend on. Upload
// overwrites an existing key (S3 put semantics), which is what photo
// replacement relies on; Delete of an absent key is a no-op success.
type ObjectStorage interface {
	Upload(bucket, key string, src io.Reader) error
	Download(bucket, key string) ([]byte, error)
	Delete(bucket, key string) error
	List(bucket, prefix string) ([]Object, error)
	Count(bucket, prefix string) (int, error)
	PresignGet(bucket, key string, expires time.Duration) (string, error)
}
