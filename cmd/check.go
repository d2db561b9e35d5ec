package main

import (
	"brandkit/internal/config"
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(ctx context.Context, v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Fatal(ctx, "could not write output", zap.Error(err))
	}
}

func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [domain...]",
		Short: "Checks availability of .cv domains",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			svc, closeServices := getServices(ctx, cfg)
			defer closeServices()

			if len(args) == 1 {
				res, err := svc.domains.CheckSingle(ctx, args[0])
				printJSON(ctx, domain.ResultOf(res, "", err))

				return
			}

			res, err := svc.domains.CheckAvailability(ctx, args)
			printJSON(ctx, domain.ResultOf(res, "", err))
		},
	}

	return cmd
}

func brandCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Generates brand identities from a bio",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			bio, _ := cmd.Flags().GetString("bio")
			name, _ := cmd.Flags().GetString("name")

			svc, closeServices := getServices(ctx, cfg)
			defer closeServices()

			res, err := svc.brand.Generate(ctx, bio, name)
			if res == nil && err == nil {
				res = []domain.BrandIdentity{}
			}
			printJSON(ctx, domain.ResultOf(res, "", err))
		},
	}
	cmd.Flags().String("bio", "", "Short bio describing the person or business")
	cmd.Flags().String("name", "", "Optional name to build the brand around")
	_ = cmd.MarkFlagRequired("bio")

	return cmd
}
