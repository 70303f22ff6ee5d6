// Package file provides TOML file-based configuration storage. Stored
// Dropbox credentials live here too, under the dropbox.* keys, with the
// config file written 0600.
package file
