// Package dblp scrapes publication records from DBLP.
//
// ParseListing turns an author page into records: each li.entry with a [j<n>]
// or [c<n>] token becomes a journal or conference record. The citation text
// after the title runs through an ordered cascade of extractors, and the first
// shape that matches supplies venue, volume, pages and year. A miss leaves the
// fields empty.
//
// ParseDetail reads a proceedings page for a conference's location (from the
// "<name>: <location>" heading) and date ("December 15-18, 2024").
//
// Client does the HTTP side: one listing request and one request per detail
// page, sequential, each bounded by its own timeout and paced by a rate.Limiter.
package dblp
