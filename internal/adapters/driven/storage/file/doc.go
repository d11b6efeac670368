// Package file provides file-backed implementations of the charta storage
// ports: a YAML template catalog that can be watched for edits, and a JSON
// array charter record log.
//
// Both stores write through a temporary file and rename it into place, so a
// crash never leaves a half-written catalog or log behind.
package file
