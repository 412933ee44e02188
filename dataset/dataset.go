package dataset

import (
	"context"

	"github.com/sproutml/sprout/feature"
)

/*
Dataset represents an ordered collection of samples.

Its Samples method returns the samples it contains, in order.

Its Count method returns the number of samples it contains.

Both methods take a context that may allow cancelling the operation
if the implementation allows it.
*/
type Dataset interface {
	Samples(context.Context) ([]feature.Sample, error)
	Count(context.Context) (int, error)
}

type memoryDataset struct {
	samples []feature.Sample
}

/*
New takes a slice of samples and returns a Dataset backed by the
process memory space with them.
*/
func New(samples []feature.Sample) Dataset {
	return &memoryDataset{samples}
}

func (ds *memoryDataset) Samples(ctx context.Context) ([]feature.Sample, error) {
	return ds.samples, nil
}

func (ds *memoryDataset) Count(ctx context.Context) (int, error) {
	return len(ds.samples), nil
}
