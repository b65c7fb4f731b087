package biodistance

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"io/ioutil"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType attempts to detect the data type of a buffer by checking
// against a set of known data types.  Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(data []byte) DataType {
	for dt, sig := range byteCodeSigs {
		if bytes.HasPrefix(data, sig) {
			return dt
		}
	}

	return DataTypeNoCompression
}

// MaybeDecompress returns data unchanged unless it starts with the signature
// of a supported compression format, in which case the decompressed bytes are
// returned. Zip archives yield their first entry.
func MaybeDecompress(data []byte) ([]byte, error) {
	var r io.Reader

	src := bytes.NewReader(data)

	switch DetectDataType(data) {
	case DataTypeGzip:
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		r = gz
	case DataTypeZip:
		zr := zipstream.NewReader(src)
		if _, err := zr.Next(); err != nil {
			return nil, pfx.Err(err)
		}
		r = zr
	case DataTypeBZip2:
		r = bzip2.NewReader(src)
	case DataTypeXZ:
		reader, err := xz.NewReader(src, 0)
		if err != nil {
			return nil, pfx.Err(err)
		}
		r = reader
	case DataTypeZ:
		zr, err := zlib.NewReader(src)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer zr.Close()
		r = zr
	default:
		// No data type detected. For now, we assume this is uncompressed.
		return data, nil
	}

	out, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
