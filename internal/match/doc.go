// Package match provides edit-distance helpers used to suggest the intended
// spelling of mistyped rule-file entries.
package match
