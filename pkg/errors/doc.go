// Package errors provides the coded error type used across dotstash.
//
// Every failure that crosses a package boundary is a *StashError carrying one
// of four domain codes (CONFIG, CONFLICT, INTEGRITY, IO) plus free-form
// details such as the entry scope, key and the step that failed. Callers test
// for a category with IsErrorCode or errors.Is against a sentinel built with
// New.
package errors
