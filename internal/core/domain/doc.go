// Package domain defines the core business entities for charta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Template: A standard charter-party form and its default terms
//   - VesselClass: A tanker size class and its reference terms
//   - Clause: An optional clause from the clause library
//   - TermSet: The working set of terms for one charter
//   - CharterRecord: A saved snapshot of a TermSet
//   - Document: A rendered, sectioned contract body
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Reference Data
//
// Vessel classes, the clause library, trade lanes and the built-in
// template catalog are package-level tables. They are never mutated
// after initialisation and are safe for concurrent reads.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
