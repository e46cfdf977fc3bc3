// Package pdftext turns PDF documents into the best available plain-text
// representation. Several independent extraction backends run against the
// same document, their outputs are scored, and a winner is selected, with
// image-based OCR available for scanned documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., ledongthuc/, fitz/, sqlite/).
package pdftext
