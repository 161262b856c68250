// Package staticfiles embeds the site's CSS and JS so the binary ships
// self-contained; NOVELLA_DEV_STATIC serves from disk instead.
package staticfiles

import (
	"embed"
	"io/fs"
)

//go:embed css/* js/*
var embedded embed.FS

func EmbeddedFS() fs.FS {
	return embedded
}
