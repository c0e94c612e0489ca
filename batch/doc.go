// Package batch runs the extraction pipeline over a set of documents with a
// bounded worker pool. Documents are isolated from each other: one failed or
// slow extraction never aborts the rest of the quarter's run.
package batch
