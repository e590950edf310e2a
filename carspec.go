// Package carspec extracts structured vehicle specification records from
// the plain-text car pages of the MEI reference site.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/) or their
// concern (mei/ for the page parser, crawl/ for the batch driver).
package carspec
