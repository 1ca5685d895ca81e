// Package config loads process settings from the environment, optionally
// seeded from a .env file, and builds the process logger.
//
// Every setting has a default; a malformed value is logged and replaced by
// its default rather than aborting start-up.
package config
