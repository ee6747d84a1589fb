package faadash

import(
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"github.com/klauspost/compress/gzip"
)

// The strike CSV can live on local disk or in a GCS bucket; either way it
// might be gzip'ed.

// {{{ multiCloser

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (mc multiCloser)Close() error {
	var firstErr error
	for i := len(mc.closers)-1; i >= 0; i-- {
		if err := mc.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// }}}
// {{{ OpenSource

// OpenSource opens a CSV source by name: either "gs://bucket/object" or a
// local path. Names ending ".gz" are unwrapped transparently.
func OpenSource(ctx context.Context, name string) (io.ReadCloser, error) {
	var rdr io.ReadCloser

	if bucketName,fileName,ok := splitGCSName(name); ok {
		gcsRdr,err := openGCS(ctx, bucketName, fileName)
		if err != nil { return nil, err }
		rdr = gcsRdr
	} else {
		osRdr,err := os.Open(name)
		if err != nil { return nil, err }
		rdr = osRdr
	}

	if !strings.HasSuffix(name, ".gz") {
		return rdr, nil
	}

	gzRdr,err := gzip.NewReader(rdr)
	if err != nil {
		rdr.Close()
		return nil, fmt.Errorf("gzopen '%s': %v", name, err)
	}

	return multiCloser{gzRdr, []io.Closer{rdr, gzRdr}}, nil
}

func splitGCSName(name string) (string, string, bool) {
	if !strings.HasPrefix(name, "gs://") { return "", "", false }
	parts := strings.SplitN(strings.TrimPrefix(name, "gs://"), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" { return "", "", false }
	return parts[0], parts[1], true
}

// }}}
// {{{ openGCS

func openGCS(ctx context.Context, bucketName, fileName string) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil { return nil, err }

	bucket := client.Bucket(bucketName)
	gcsReader,err := bucket.Object(fileName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("GCS-Open %s|%s: %v", bucketName, fileName, err)
	}

	return multiCloser{gcsReader, []io.Closer{gcsReader, client}}, nil
}

// }}}
// {{{ ListSources

// ListSources names the objects under a bucket prefix, for picking a dump
// to load.
func ListSources(ctx context.Context, bucketName, prefix string) ([]string, error) {
	client, err := storage.NewClient(ctx)
	if err != nil { return nil, err }
	defer client.Close()

	q := &storage.Query{ Prefix: prefix }

	names := []string{}
	it := client.Bucket(bucketName).Objects(ctx, q)
	for {
		attrs,err := it.Next()
		if err == iterator.Done { break }
		if err != nil { return nil, fmt.Errorf("GCS-List %s/%s: %v", bucketName, prefix, err) }
		names = append(names, attrs.Name)
	}

	return names, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
