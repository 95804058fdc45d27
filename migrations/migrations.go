// Package migrations embeds the SurrealDB schema files so the server and the
// test database apply the same schema.
package migrations

import "embed"

// FS holds every *.surql file in lexical order of application.
//
//go:embed *.surql
var FS embed.FS
