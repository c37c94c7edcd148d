// Package services implements the driving port interfaces.
// Services contain the core reading workflow and orchestrate
// calls to driven ports (adapters).
package services
