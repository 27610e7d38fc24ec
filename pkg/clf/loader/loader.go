// Package loader reads CLF documents from the filesystem, keeping file
// access out of the core parser. ReadFiles parses many documents
// concurrently with fail-fast semantics.
package loader

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/colour-pipeline/go-clf/pkg/clf"
)

// ReadFile parses the CLF document at the given path.
func ReadFile(path string, opts ...clf.ParseOption) (*clf.ProcessList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()

	pl, err := clf.ParseReader(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}

	return pl, nil
}

// ReadFiles parses every path concurrently, at most limit files at a time
// (unlimited when limit <= 0). The first failure cancels the remaining work
// and is returned. Results keep the order of the input paths.
func ReadFiles(ctx context.Context, paths []string, limit int, opts ...clf.ParseOption) ([]*clf.ProcessList, error) {
	errGrp, dCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		errGrp.SetLimit(limit)
	}

	results := make([]*clf.ProcessList, len(paths))

	for i, path := range paths {
		i, path := i, path

		errGrp.Go(func() error {
			if err := dCtx.Err(); err != nil {
				return errors.Wrapf(err, "unable to read %s", path)
			}

			pl, err := ReadFile(path, opts...)
			if err != nil {
				return err
			}

			results[i] = pl

			return nil
		})
	}

	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
