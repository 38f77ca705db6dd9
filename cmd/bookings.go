package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/kinetic-booking/internal/config"
	bookingRepo "github.com/m04kA/kinetic-booking/internal/infra/storage/booking"
)

func newBookingsCmd(opts *rootOptions) *cobra.Command {
	var limit uint64

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List the most recent bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			db, err := openDB(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := bookingRepo.NewRepository(db, cfg.Database.Driver).ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tNAME\tEMAIL\tPHONE\tWORK")
			for _, r := range records {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Name, r.Email, r.PhoneNumber, r.Work)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Uint64VarP(&limit, "limit", "n", 20, "number of bookings to show")
	return cmd
}
