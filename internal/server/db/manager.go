// Package db wires the server repositories to a single database handle
// and runs schema migrations on startup.
package db

import (
	"context"
	"database/sql"

	"github.com/harshpatel958/kontax/internal/server/cards"
	"github.com/harshpatel958/kontax/internal/server/devices"
	"github.com/harshpatel958/kontax/internal/server/refreshtokens"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Devices() devices.Repository
	RefreshTokens() refreshtokens.Repository
	Cards() cards.Repository
}
