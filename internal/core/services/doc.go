// Package services implements the driving port interfaces.
// Services contain the core business logic - modality dispatch,
// consolidation, index ownership - and orchestrate calls to driven
// ports (adapters).
package services
