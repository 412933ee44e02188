/*
Package mongodataset provides methods to read labeled training data
from a MongoDB collection into an in-memory dataset.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/sproutml/sprout/dataset"
	"github.com/sproutml/sprout/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Read takes a context.Context, a MongoDB database session, a
collection name, a slice of features and the name of the label field
and returns a dataset with one sample per document on the collection
of the session's default database, the parallel slice of labels and
an error.

Each feature is read from the document field with its name: string
fields for categorical features, numeric fields for numerical ones.
A document without a field for a feature yields a sample with a
missing value for it. An error is returned if the collection cannot
be iterated or a document defines no label field.
*/
func Read(ctx context.Context, session *mgo.Session, collection string, features []feature.Feature, label string) (dataset.Dataset, []string, error) {
	var samples []feature.Sample
	var labels []string
	iter := session.DB("").C(collection).Find(nil).Iter()
	defer iter.Close()
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		labelValue, ok := doc[label]
		if !ok {
			return nil, nil, fmt.Errorf("reading collection %s: document %v defines no %s field", collection, doc["_id"], label)
		}
		featureValues := make(map[string]interface{})
		for _, f := range features {
			v, ok := doc[f.Name()]
			if !ok || v == nil {
				continue
			}
			if _, numerical := f.(*feature.NumericalFeature); numerical {
				floatValue, err := floatFieldValue(v)
				if err != nil {
					return nil, nil, fmt.Errorf("reading collection %s: document %v: feature %s: %v", collection, doc["_id"], f.Name(), err)
				}
				featureValues[f.Name()] = floatValue
				continue
			}
			featureValues[f.Name()] = fmt.Sprintf("%v", v)
		}
		samples = append(samples, dataset.NewSample(featureValues))
		labels = append(labels, fmt.Sprintf("%v", labelValue))
	}
	if err := iter.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	return dataset.New(samples), labels, nil
}

func floatFieldValue(v interface{}) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("expected numeric field, got %T", v)
}
