// Package report persists run diagnostics as a small self-describing file:
// a fixed header naming the codec and compression used, followed by the
// compressed, codec-encoded payload.
//
// Reports are a post-run artifact for offline analysis - nothing in the
// search engine ever reads one back.
package report
