// Package driving defines the inbound ports of the reader core, consumed by
// the CLI adapter and any future front end.
package driving
