// Package markdown provides plain-text serializers for rendered charters:
// a Markdown document and a flat "Field: value" listing.
package markdown
