// Package table is the view engine behind every list screen: an in-memory
// record store run through a filter pipeline, a single-column sort and a page
// window, with a selection set kept aside that survives refiltering.
//
// Everything here is generic over the record type and is configured per
// screen through Config; nothing in the package knows about applicants or
// job postings.
package table
