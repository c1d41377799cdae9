// Package output handles destination selection for reorganized documents.
//
// The outputs of fsched are Fountain text; [Write] sends a document to a
// file path or to stdout when no path is given.
package output
