package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/tu-usuario/gestor-comercial/pkg/config"
	"github.com/tu-usuario/gestor-comercial/pkg/logger"
)

// RunMigrations aplica las migraciones pendientes de migrationsDir con goose.
// Usa una conexión database/sql propia (driver pgx stdlib) que se cierra al terminar.
func RunMigrations(cfg config.DBConfig, migrationsDir string, log *logger.Logger) error {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("abrir conexión para migraciones: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialecto goose: %w", err)
	}

	log.Info().Str("dir", migrationsDir).Msg("aplicando migraciones pendientes")
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	log.Info().Msg("migraciones al día")
	return nil
}
