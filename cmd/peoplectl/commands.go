package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pawel123789/peopleclient"
)

func newListCmd(s *settings) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every record, optionally fetched page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := s.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			start := time.Now()
			var people []peopleclient.Person
			if cmd.Flags().Changed("limit") {
				people, err = c.ListPaged(ctx, limit)
			} else {
				people, err = c.ListAll(ctx)
			}
			if err != nil {
				log.Error().Err(err).Int("limit", limit).Dur("elapsed", time.Since(start)).Msg("list failed")
				return err
			}
			log.Debug().Int("count", len(people)).Dur("elapsed", time.Since(start)).Msg("list completed")
			return printJSON(cmd.OutOrStdout(), people)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Page size; fetches all pages in order (must be positive)")
	return cmd
}

func newAddCmd(s *settings) *cobra.Command {
	var req peopleclient.NewPerson

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := s.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			log.Debug().
				Str("first_name", req.FirstName).
				Str("last_name", req.LastName).
				Str("email", req.Email).
				Msg("adding person")

			p, err := c.AddPerson(ctx, req)
			if err != nil {
				log.Error().Err(err).Str("email", req.Email).Msg("add person failed")
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone (required)")
	cmd.Flags().StringVar(&req.IPAddress, "ip-address", "", "IP address (required)")

	for _, f := range []string{"first-name", "last-name", "email", "phone", "ip-address"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newGetCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := s.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			p, err := c.GetPerson(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func newQueryCmd(s *settings) *cobra.Command {
	var where map[string]string
	fieldFlags := map[string]*string{
		"first_name": new(string),
		"last_name":  new(string),
		"phone":      new(string),
		"ip_address": new(string),
		"email":      new(string),
	}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List records matching every given field exactly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := peopleclient.Criteria{}
			for k, v := range where {
				criteria[k] = v
			}
			for field, val := range fieldFlags {
				if cmd.Flags().Changed(flagName(field)) {
					criteria[field] = *val
				}
			}

			c, ctx, cancel, err := s.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			records, err := c.QueryRaw(ctx, criteria)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), records)
		},
	}

	for field, val := range fieldFlags {
		cmd.Flags().StringVar(val, flagName(field), "", fmt.Sprintf("Match %s exactly", field))
	}
	cmd.Flags().StringToStringVar(&where, "where", nil, "Extra field=value criteria")
	return cmd
}

func newByIPCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "by-ip <partial-ip>",
		Short: "List records whose IP address starts with the given prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := s.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			people, err := c.PeopleByPartialIP(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), people)
		},
	}
}

func newDeleteCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := s.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			if err := c.DeletePerson(ctx, args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return err
		},
	}
}

func newDeleteByNameCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-by-name <first-name>",
		Short: "Delete every record with the given first name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := s.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			n, err := c.DeleteByFirstName(ctx, args[0])
			if err != nil {
				return fmt.Errorf("%d deleted before failure: %w", n, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d deleted\n", n)
			return err
		},
	}
}

func newImportCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Create every record from a JSON array file, stopping at the first failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := s.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			var n int
			if args[0] == "-" {
				n, err = c.Import(ctx, cmd.InOrStdin())
			} else {
				n, err = c.ImportFile(ctx, args[0])
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Successfully added %d new records\n", n)
			return err
		},
	}
}

// flagName turns a record field name into its flag spelling.
func flagName(field string) string { return strings.ReplaceAll(field, "_", "-") }
