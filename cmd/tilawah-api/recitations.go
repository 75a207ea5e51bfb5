package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/MarcoPoloResearchLab/tilawah/internal/config"
	"github.com/MarcoPoloResearchLab/tilawah/internal/database"
	"github.com/MarcoPoloResearchLab/tilawah/internal/logging"
	"github.com/MarcoPoloResearchLab/tilawah/internal/recitations"
	"github.com/MarcoPoloResearchLab/tilawah/internal/uploads"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type moderationSession struct {
	logger  *zap.Logger
	service *recitations.Service
	store   *uploads.DiskStore
}

func newRecitationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recitations",
		Short: "Moderate user-submitted recitations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "pending",
		Short: "List recitations awaiting approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModeration(cmd.Context(), func(ctx context.Context, session moderationSession) error {
				records, err := session.service.ListPending(ctx)
				if err != nil {
					return err
				}
				return printRecitations(cmd.OutOrStdout(), records)
			})
		},
	})
	cmd.AddCommand(newApprovalCmd("approve", "Publish a recitation", true))
	cmd.AddCommand(newApprovalCmd("unapprove", "Hide a published recitation", false))
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recitation and its stored audio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecitationID(args[0])
			if err != nil {
				return err
			}
			return withModeration(cmd.Context(), func(ctx context.Context, session moderationSession) error {
				record, err := session.service.Delete(ctx, id)
				if err != nil {
					return err
				}
				if err := session.store.RemoveURL(record.AudioURL); err != nil {
					session.logger.Warn("stored audio not removed",
						zap.Uint("recitation_id", record.ID),
						zap.String("audio_url", record.AudioURL),
						zap.Error(err))
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted recitation %d\n", record.ID)
				return err
			})
		},
	})

	return cmd
}

func newApprovalCmd(use, short string, approved bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecitationID(args[0])
			if err != nil {
				return err
			}
			return withModeration(cmd.Context(), func(ctx context.Context, session moderationSession) error {
				record, err := session.service.SetApproval(ctx, id, approved)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "recitation %d approved=%t\n", record.ID, record.IsApproved)
				return err
			})
		},
	}
}

func withModeration(ctx context.Context, run func(context.Context, moderationSession) error) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(appConfig.LogLevel, appConfig.Environment)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.Open(databaseConfig(appConfig), logger)
	if err != nil {
		return err
	}
	defer closeDatabase(db, logger)

	service, err := recitations.NewService(recitations.ServiceConfig{Database: db, Clock: time.Now, Logger: logger})
	if err != nil {
		return err
	}
	store, err := newDiskStore(appConfig)
	if err != nil {
		return err
	}

	return run(ctx, moderationSession{logger: logger, service: service, store: store})
}

func parseRecitationID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid recitation id %q", raw)
	}
	return uint(id), nil
}

func printRecitations(out io.Writer, records []recitations.UserRecitation) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tSURAH\tRECITER\tSIZE\tTYPE\tUPLOADED\tAUDIO")
	for _, record := range records {
		fmt.Fprintf(writer, "%d\t%d\t%s\t%d\t%s\t%s\t%s\n",
			record.ID,
			record.SurahNumber,
			record.ReciterName,
			record.FileSize,
			record.DetectedType,
			record.CreatedAt.UTC().Format(time.RFC3339),
			record.AudioURL)
	}
	return writer.Flush()
}
