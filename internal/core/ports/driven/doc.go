// Package driven defines the outbound ports of the reader core: format
// parsers, the persistent library and chapter cache, the in-memory document
// cache, and the settings store. Adapters implement these interfaces.
package driven
