// Package errs provides the error vocabulary shared by the label service.
//
// Every error kind comes as a sentinel (e.g. ErrObjectNotFound) plus a struct
// carrying the details, with constructors with and without a cause. The
// structs unwrap to their sentinel so callers classify them with errors.Is
// and inspect details with errors.As.
package errs
