/*
Package mongodataset provides functions to read datasets from and write them
to a collection on a MongoDB database.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// DefaultCollection is the collection used when none is given
const DefaultCollection = "samples"

/*
Read takes a context, a MongoDB session, the metadata of the rows and the
name of a collection on the session's default database and returns the
dataset made of the documents on the collection, or an error.

Documents are expected to have a field for each feature and the label, named
after them.
*/
func Read(ctx context.Context, session *mgo.Session, md *feature.Metadata, collection string) (*dataset.Dataset, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	s := session.Copy()
	defer s.Close()
	projection := bson.M{md.Features[0].Name(): 1, md.Features[1].Name(): 1, md.Label.Name(): 1}
	iter := samplesCollection(s, collection).Find(nil).Select(projection).Iter()
	var rows []dataset.Row
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, err
		}
		r, err := rowFromDocument(md, doc)
		if err != nil {
			iter.Close()
			return nil, fmt.Errorf("parsing document %v: %v", doc["_id"], err)
		}
		rows = append(rows, r)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("iterating on %s: %v", collection, err)
	}
	return dataset.New(rows), nil
}

/*
Write takes a context, a MongoDB session, the metadata of the rows, the name
of a collection and a dataset and inserts a document for each row of the
dataset into the collection. It returns the number of documents inserted or
an error.
*/
func Write(ctx context.Context, session *mgo.Session, md *feature.Metadata, collection string, ds *dataset.Dataset) (int, error) {
	if err := md.Validate(); err != nil {
		return 0, err
	}
	if ds.Empty() {
		return 0, nil
	}
	docs := make([]interface{}, 0, ds.Count())
	for _, r := range ds.Rows() {
		docs = append(docs, documentFromRow(md, r))
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s := session.Copy()
	defer s.Close()
	if err := samplesCollection(s, collection).Insert(docs...); err != nil {
		return 0, fmt.Errorf("inserting documents into %s: %v", collection, err)
	}
	return len(docs), nil
}

func samplesCollection(s *mgo.Session, collection string) *mgo.Collection {
	if collection == "" {
		collection = DefaultCollection
	}
	return s.DB("").C(collection)
}

func rowFromDocument(md *feature.Metadata, doc bson.M) (dataset.Row, error) {
	return dataset.ParseRow(md, doc[md.Features[0].Name()], doc[md.Features[1].Name()], doc[md.Label.Name()])
}

func documentFromRow(md *feature.Metadata, r dataset.Row) bson.M {
	return bson.M{
		md.Features[0].Name(): r.Point[0],
		md.Features[1].Name(): r.Point[1],
		md.Label.Name():       md.Label.Format(r.Passed),
	}
}
