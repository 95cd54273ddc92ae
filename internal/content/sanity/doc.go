// Package sanity talks to the Sanity content lake.
//
// It owns the configuration guard that decides whether the content source is
// usable at all, the process-wide client accessor, and a small HTTP client
// for the read-only GROQ query endpoint. Nothing in this package touches the
// network unless IsConfigured accepted the project and dataset identifiers.
package sanity
