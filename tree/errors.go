package tree

// Error represents an error related with trees and their predictions
type Error string

/*
ErrInvalidThreshold is the error returned when the minimum number of samples
a branch must hold to be trusted is lower than 1.
*/
const ErrInvalidThreshold = Error("minimum samples must be at least 1")

/*
ErrMalformedQuery is the error returned when asked to predict a point with
non-finite feature values.
*/
const ErrMalformedQuery = Error("malformed query")

/*
ErrNilTree is the error returned when asked to operate on a tree that has not
been grown.
*/
const ErrNilTree = Error("nil tree")

/*
ErrUnknownNode is the error returned when a node ID does not belong to the tree
*/
const ErrUnknownNode = Error("unknown node")

func (e Error) Error() string {
	return string(e)
}
