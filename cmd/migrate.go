package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/podforge/podforge-api/internal/database"
	"github.com/podforge/podforge-api/internal/models"
	"github.com/podforge/podforge-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Podforge API.

The schema is managed with GORM auto-migration: "up" creates or updates the
podcast job table, "down" drops it, and "status" reports the current state
of the schema.

Available subcommands:
  up      - Apply all pending migrations
  down    - Drop the job table
  status  - Show current migration status`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

Auto-migration only adds missing tables, columns, and indexes; it never
drops existing columns or their data.`,
	RunE: runMigrateUp,
}

// migrateDownCmd rolls back the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback the last applied migration",
	Long: `Rollback the schema by dropping the podcast job table.

All job records are lost, including persisted scripts. Stored audio
artifacts are not touched.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of database migrations.

This command shows whether the podcast job table and its columns exist,
so schema drift is visible before starting the server.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		fmt.Println("Would migrate:")
		fmt.Println("  podcast_jobs")
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(&models.PodcastJob{}); err != nil {
		return err
	}

	fmt.Println("Migrations applied")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		fmt.Println("Would drop:")
		fmt.Println("  podcast_jobs")
		return nil
	}

	// Confirmation prompt for destructive action
	fmt.Print("WARNING: This drops the podcast_jobs table and all job records. Continue? (y/N): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Migration rollback cancelled")
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.DB.Migrator().DropTable(&models.PodcastJob{}); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	fmt.Println("Schema rolled back")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Println("Database Migration Status")
	fmt.Println(repeatString("=", 50))

	migrator := db.DB.Migrator()
	if !migrator.HasTable(&models.PodcastJob{}) {
		fmt.Println("podcast_jobs: missing (run \"migrate up\")")
		return nil
	}

	fmt.Println("podcast_jobs: present")
	for _, column := range []string{"status", "progress", "script", "audio_url", "audio_key", "duration"} {
		state := "missing"
		if migrator.HasColumn(&models.PodcastJob{}, column) {
			state = "present"
		}
		fmt.Printf("  column %-10s %s\n", column, state)
	}

	return nil
}

// openDatabase opens the configured database without migrating it
func openDatabase() (*database.DB, error) {
	dbPath := config.GetString("database.path")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is not configured")
	}
	return database.Initialize(dbPath, config.GetBool("database.verbose"))
}

// repeatString repeats a string n times
func repeatString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += s
	}
	return result
}
