// Package docx writes rendered charter documents as Word (OOXML) files
// and reads the title and paragraph text back out of them.
//
// The writer emits the smallest package Word accepts: content types,
// package relationships, the main document part and core properties.
// Output is deterministic, so rendering the same terms twice produces
// byte-identical files.
package docx
