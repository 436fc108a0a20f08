package frontend

import "embed"

// StaticFiles holds the built frontend assets served by the HTTP server
//
//go:embed all:dist
var StaticFiles embed.FS
