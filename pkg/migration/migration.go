package migration

import (
	"errors"
	"fmt"
	"path"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func finish(m *migrate.Migrate, err error) {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(err)
	}
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		panic(sourceErr)
	}
	if dbErr != nil {
		panic(dbErr)
	}
}

// MigrateCommand returns the cobra command with up/down subcommands.
func MigrateCommand(dsn string) *cobra.Command {
	cmd := &cobra.Command{
		Use: "migrate",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "migrate up all versions",
			Run: func(cmd *cobra.Command, args []string) {
				m := newMigrate("file://migrations", dsn)
				finish(m, m.Up())
				fmt.Println("Migrated up successfully")
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "migrate down one version",
			Run: func(cmd *cobra.Command, args []string) {
				m := newMigrate("file://migrations", dsn)
				finish(m, m.Steps(-1))
				fmt.Println("Migrated down successfully")
			},
		},
	)
	return cmd
}

// MigrateUpForTesting migrates up using the migrations under rootDir.
func MigrateUpForTesting(rootDir string, dsn string) {
	sourceURL := "file://" + path.Join(rootDir, "migrations")
	m := newMigrate(sourceURL, dsn)
	finish(m, m.Up())
}
