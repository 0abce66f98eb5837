// Package token decides how scalar text appears in canonical loom
// output: whether a string or ref id may be written bare, and the
// quoted form with minimal escapes when it may not.
package token
