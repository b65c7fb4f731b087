package biodistance

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path names a Google Storage object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// AnyGoogleStoragePath reports whether any of the paths needs a storage client.
func AnyGoogleStoragePath(paths ...string) bool {
	for _, path := range paths {
		if IsGoogleStoragePath(path) {
			return true
		}
	}

	return false
}

// SplitGoogleStoragePath separates gs://bucket/object into bucket and object.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into a bucket and an object, but got %d parts: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// OpenFromGoogleStorage opens a reader over a gs:// object using the client's
// credentials.
func OpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if client == nil {
		return nil, fmt.Errorf("%s: a storage client is required to read from google storage", path)
	}

	bucketName, pathName, err := SplitGoogleStoragePath(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rdr, err := client.Bucket(bucketName).Object(pathName).NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return rdr, nil
}
