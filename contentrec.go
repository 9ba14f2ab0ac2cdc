// Package contentrec converts a web page's HTML body into a flat, ordered
// sequence of signposted content lines (headings, paragraphs, images) plus
// page metadata and embedded structured data, suitable for insertion into a
// content recommendation template document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, docx/).
package contentrec
