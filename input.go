// Package biodistance holds the input plumbing shared by the biodistance
// tools: reading whole trait files from local disk or Google Storage,
// transparent decompression, and delimiter handling.
package biodistance

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// ErrIO marks failures to locate or read an input.
var ErrIO = errors.New("input unreadable")

// IOError records which input could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// ReadInput loads the complete, decompressed contents of path. Paths
// beginning with gs:// are fetched with client, which may be nil otherwise.
func ReadInput(ctx context.Context, path string, client *storage.Client) ([]byte, error) {
	var data []byte

	if IsGoogleStoragePath(path) {
		rdr, err := OpenFromGoogleStorage(ctx, path, client)
		if err != nil {
			return nil, &IOError{Path: path, Err: pfx.Err(err)}
		}
		defer rdr.Close()

		data, err = ioutil.ReadAll(rdr)
		if err != nil {
			return nil, &IOError{Path: path, Err: pfx.Err(err)}
		}
	} else {
		local, err := ExpandHome(path)
		if err != nil {
			return nil, &IOError{Path: path, Err: pfx.Err(err)}
		}

		data, err = os.ReadFile(local)
		if err != nil {
			return nil, &IOError{Path: path, Err: pfx.Err(err)}
		}
	}

	out, err := MaybeDecompress(data)
	if err != nil {
		return nil, &IOError{Path: path, Err: pfx.Err(err)}
	}

	return out, nil
}

// NewStorageClientFor returns a storage client when any path lives in Google
// Storage, and nil otherwise.
func NewStorageClientFor(ctx context.Context, paths ...string) (*storage.Client, error) {
	if !AnyGoogleStoragePath(paths...) {
		return nil, nil
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return client, nil
}
