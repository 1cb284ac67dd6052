package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"feedback_widget/internal/config"
	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/infrastructure/persistence"
	"feedback_widget/pkg/application/connectors"
	"feedback_widget/pkg/logx"
)

const defaultRecentLimit = 5

// go run ./cmd/feedbacklink <organization_id> <location_id> [--name "City Clinic"] [--recent 5]
//
// Например:
//
// go run ./cmd/feedbacklink hosp-1 ChIJN1t_tDeuEmsRUsoyG83frY4 --name "City Clinic"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logx.NewLogger(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_NO_COLOR") != "")

	if err := newRootCmd(log).ExecuteContext(ctx); err != nil {
		log.Error("feedbacklink failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}

type options struct {
	name   string
	recent int
	noDB   bool
}

func newRootCmd(log *slog.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "feedbacklink <organization_id> <location_id>",
		Short: "Print a widget entry link for an organization location",
		Long: "Prints the feedback widget entry link built from HTTP_PUBLIC_URL. " +
			"Optionally stores the organization display name and shows its latest feedback.",
		Args:          cobra.ExactArgs(2), //nolint:mnd
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), log, cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "organization display name to store")
	cmd.Flags().IntVar(&opts.recent, "recent", defaultRecentLimit, "number of recent feedback records to show")
	cmd.Flags().BoolVar(&opts.noDB, "no-db", false, "only print the link")

	return cmd
}

func run(ctx context.Context, log *slog.Logger, out io.Writer, organizationID, locationID string, opts options) error {
	// 1. Ссылка не требует базы
	link, err := widget.NewLink(organizationID, locationID)
	if err != nil {
		return fmt.Errorf("widget.NewLink: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	if _, err = fmt.Fprintln(out, link.EntryURL(cfg.HTTP.PublicURL)); err != nil {
		return fmt.Errorf("fmt.Fprintln: %w", err)
	}

	if opts.noDB {
		return nil
	}

	// 2. Подключение к базе данных
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err = persistence.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// 3. Имя организации для заголовка виджета
	if opts.name != "" {
		organization := entity.Organization{ID: link.OrganizationID, Name: opts.name}

		if err = persistence.NewOrganizationRepository(db).Upsert(ctx, organization); err != nil {
			return fmt.Errorf("organizationRepo.Upsert: %w", err)
		}

		log.Info("organization name saved",
			slog.String(logx.FieldOrganizationID, link.OrganizationID.String()),
			slog.String("name", organization.Name))
	}

	if opts.recent <= 0 {
		return nil
	}

	// 4. Последние отзывы
	records, err := persistence.NewFeedbackRepository(db).ListByOrganization(ctx, link.OrganizationID, opts.recent)
	if err != nil {
		return fmt.Errorf("feedbackRepo.ListByOrganization: %w", err)
	}

	for _, record := range records {
		log.Info("recent feedback",
			slog.Int64("id", record.ID),
			slog.String(logx.FieldLocationID, record.LocationID.String()),
			slog.String("rating", record.Rating.Stars()),
			slog.String("comment", record.Comment.String()),
			slog.String("created_at", record.CreatedAt.UTC().Format(time.DateTime)))
	}

	log.Info("completed", slog.Int("recent_count", len(records)))

	return nil
}
