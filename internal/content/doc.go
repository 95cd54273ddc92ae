// Package content reads typed page records from the content source.
//
// Every read goes through Fetch, which returns either the decoded record or a
// *FetchError carrying the reason the record is absent. Pages branch on the
// reason with ReasonOf or collapse all reasons with IsAbsent.
package content
