package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/persistence/seeds"
	"helpdesk/internal/shared/logger"
)

var (
	env  string
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data",
		Long:  `Load demo fixture data from a yaml file into the database. Reseeding is idempotent.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/seeds.yaml", "Path to the seed yaml file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log.Infow("loading seed data", "file", file)

	seedFile, err := seeds.LoadFromFile(file)
	if err != nil {
		log.Errorw("failed to load seed file", "error", err)
		return err
	}

	if err := seeds.Apply(database.Get(), seedFile); err != nil {
		log.Errorw("failed to apply seeds", "error", err)
		return err
	}

	log.Infow("seed data applied successfully",
		"organizations", len(seedFile.Organizations),
		"profiles", len(seedFile.Profiles),
		"tickets", len(seedFile.Tickets))

	return nil
}
