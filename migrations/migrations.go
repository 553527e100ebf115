// Package migrations embebe los archivos SQL que golang-migrate ejecuta al
// arranque del proceso.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
