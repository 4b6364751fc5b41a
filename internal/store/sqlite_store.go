//go:build !bolt

package store

import (
	"path/filepath"

	"github.com/inovacc/focset/internal/application"
	"github.com/inovacc/focset/internal/store/sqlite"
)

func initDB(dir string) (Store, error) {
	return sqlite.New(filepath.Join(dir, application.HistoryDBName))
}
