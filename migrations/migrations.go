// Package migrations holds the database schema applied by dbtool.
package migrations

import _ "embed"

//go:embed schema.sql
var Schema string
