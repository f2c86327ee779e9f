package dataset

// Error represents an error related with datasets
type Error string

/*
ErrEmptyDataset is the error returned when an operation needs at least one
row and the dataset has none.
*/
const ErrEmptyDataset = Error("empty dataset")

/*
ErrNonFinite is the error returned when a sample carries a NaN or infinite
feature value.
*/
const ErrNonFinite = Error("non-finite feature value")

func (e Error) Error() string {
	return string(e)
}
