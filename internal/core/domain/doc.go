// Package domain contains the core business types for the folio reader:
// documents, chapters, reading progress, and the supporting pure functions.
// It has no dependencies on adapters or infrastructure.
package domain
