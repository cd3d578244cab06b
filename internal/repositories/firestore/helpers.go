package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
)

// iterDocs runs fn for every document the query yields. Iteration stops on
// the first error fn returns.
func iterDocs(ctx context.Context, q firestore.Query, fn func(doc *firestore.DocumentSnapshot) error) error {
	iter := q.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
}

// countDocs runs a server-side count aggregation over the query.
func countDocs(ctx context.Context, q firestore.Query) (int64, error) {
	results, err := q.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, err
	}

	value, ok := results["all"]
	if !ok {
		return 0, errors.New("count aggregation returned no result")
	}

	count, ok := value.(*firestorepb.Value)
	if !ok {
		return 0, errors.New("unexpected count aggregation result type")
	}

	return count.GetIntegerValue(), nil
}
