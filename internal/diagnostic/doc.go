// Package diagnostic provides structured warnings and notes reported while
// restoring references.
//
// Resolution itself never fails on bad input: dangling phandles, missing
// cell metadata and truncated arrays all degrade to a best-effort rendering.
// Each degradation is recorded here so the caller can report it, or treat
// it as fatal in strict mode.
package diagnostic
