// Package neopolitan provides the external scanner for neopolitan documents.
// The scanner recognizes the "-- /code" terminator closing code sections and containers,
// consuming the preceding body, and exposes the host engine lifecycle: create, destroy,
// serialize, deserialize and scan.
package neopolitan
