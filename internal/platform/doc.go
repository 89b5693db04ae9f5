package platform

// Package platform contains OS/platform integration glue: application root
// resolution, Python interpreter discovery for the bundled environment and
// the PATH fallback, filesystem helpers, and the append-only portal log.
