// Package file provides the TOML configuration store for charta.
//
// Settings live in ~/.charta/config.toml (or the directory given by
// --config-dir) and are addressed with dotted keys such as
// "storage.backend" or "server.rate_limit".
package file
