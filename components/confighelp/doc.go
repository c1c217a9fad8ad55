// Package confighelp exposes the backend settings help topics over a small
// net/http handler. Without a topic parameter it returns the topic index;
// with one it returns the full record, either as structured JSON or as a
// sanitized HTML fragment when format=html is requested.
package confighelp
