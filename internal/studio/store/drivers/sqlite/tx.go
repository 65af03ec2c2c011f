package sqlite

import (
	"database/sql"

	"github.com/pixelgrove/studio/internal/studio/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Users() store.Users { return &usersRepo{q: t.tx} }
