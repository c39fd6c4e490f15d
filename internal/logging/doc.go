// Package logging builds the slog logger used across mealbot.
//
// Two formats are supported: a compact console handler for interactive runs
// and a JSON handler for cron output capture. A "component" attribute is
// promoted into the console prefix so pipeline steps read naturally, and
// WithComponent provides the conventional way to tag a logger.
package logging
