// Package formatter serializes output documents to JSON files, optionally
// indented and optionally gzip-compressed.
package formatter
