package postgres

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// RunMigrations aplica las migraciones embebidas contra la DB.
// No aplicar nada (esquema al día) no es error.
func RunMigrations(migrations fs.FS, databaseURL string) error {
	src, err := iofs.New(migrations, ".")
	if err != nil {
		return fmt.Errorf("leer migraciones embebidas: %w", err)
	}

	// El driver registrado por golang-migrate para pgx/v5 usa el esquema pgx5://.
	url := databaseURL
	url = strings.Replace(url, "postgresql://", "pgx5://", 1)
	url = strings.Replace(url, "postgres://", "pgx5://", 1)

	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return fmt.Errorf("abrir migrador: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
