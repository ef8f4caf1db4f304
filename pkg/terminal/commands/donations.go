package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dono-tools/receipt-atlas/pkg/models/domain"
	"github.com/dono-tools/receipt-atlas/pkg/services/config"
	"github.com/dono-tools/receipt-atlas/pkg/services/receipt"
	"github.com/dono-tools/receipt-atlas/pkg/store/qbo"
	"github.com/dono-tools/receipt-atlas/pkg/terminal/export"
)

type DonationsCmd struct {
	profilePath string
	profile     string
	start       string
	end         string
	items       []int
	reporter    *export.Reporter
}

func NewDonationsCmd(reporter *export.Reporter) *cobra.Command {
	dc := &DonationsCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "donations",
		Short: "List qualifying donations for a date range",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.profilePath, "profiles", "", "Path to the connection profiles file")
	cmd.Flags().StringVar(&dc.profile, "profile", "", "Connection profile to use")
	cmd.Flags().StringVar(&dc.start, "start", "", "Report start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dc.end, "end", "", "Report end date (YYYY-MM-DD)")
	cmd.Flags().IntSliceVar(&dc.items, "items", nil, "Qualifying item ids")

	_ = cmd.MarkFlagRequired("profiles")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("items")

	return cmd
}

func (dc *DonationsCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	svc, realmID, err := serviceFor(ctx, dc.profilePath, dc.profile)
	if err != nil {
		return err
	}

	dateRange, err := parseDateRange(dc.start, dc.end)
	if err != nil {
		return err
	}

	qualifying := make(map[int]struct{}, len(dc.items))
	for _, id := range dc.items {
		qualifying[id] = struct{}{}
	}

	donations, err := svc.GetDonations(ctx, realmID, dateRange, qualifying)
	if err != nil {
		return fmt.Errorf("failed to build donations: %w", err)
	}

	return dc.reporter.HandleDonations(dateRange, donations)
}

func serviceFor(ctx context.Context, profilePath, profile string) (*receipt.Service, string, error) {
	registry, err := config.NewRegistry(profilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load profiles from %s: %w", profilePath, err)
	}
	cfg, realmID, err := registry.GetConfig(ctx, profile)
	if err != nil {
		return nil, "", err
	}
	return receipt.NewService(qbo.NewClient(ctx, *cfg)), realmID, nil
}

func parseDateRange(start, end string) (domain.DateRange, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid start date %q", start)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid end date %q", end)
	}
	return domain.DateRange{Start: startDate, End: endDate}, nil
}
