package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dono-tools/receipt-atlas/pkg/terminal/export"
)

type CompanyCmd struct {
	profilePath string
	profile     string
	reporter    *export.Reporter
}

func NewCompanyCmd(reporter *export.Reporter) *cobra.Command {
	cc := &CompanyCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Show the company info used on receipts",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.profilePath, "profiles", "", "Path to the connection profiles file")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "Connection profile to use")

	_ = cmd.MarkFlagRequired("profiles")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (cc *CompanyCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	svc, realmID, err := serviceFor(ctx, cc.profilePath, cc.profile)
	if err != nil {
		return err
	}

	info, err := svc.GetCompanyInfo(ctx, realmID)
	if err != nil {
		return fmt.Errorf("failed to get company info: %w", err)
	}

	return cc.reporter.HandleCompany(info)
}
