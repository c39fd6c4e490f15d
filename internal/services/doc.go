// Package services defines shared utilities consumed by the planner and the
// external collaborator clients.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that classify failures
//     (data load vs no-match vs collaborator) for exit handling.
//   - Context helpers that stamp the run correlation ID for logging.
//   - A bounded retry helper for collaborator calls.
//
// Use these helpers when wiring new pipeline steps so operational behaviour
// (error handling, observability, retries) stays uniform.
package services
