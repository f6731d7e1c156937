package main

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print the session",
		Long:  "Sign in and print the session. Export its access_token as SYMBIOSIS_TOKEN for later commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			s, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return opts.print(s)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Read members",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all members",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := opts.client()
				if err != nil {
					return err
				}
				users, err := c.Users(cmd.Context())
				if err != nil {
					return err
				}
				return opts.print(users)
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one member",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				c, err := opts.client()
				if err != nil {
					return err
				}
				user, err := c.User(cmd.Context(), id)
				if err != nil {
					return err
				}
				return opts.print(user)
			},
		},
	)
	return cmd
}

func newBookingsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Read and submit bookings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all bookings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := opts.client()
				if err != nil {
					return err
				}
				bookings, err := c.Bookings(cmd.Context())
				if err != nil {
					return err
				}
				return opts.print(bookings)
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show one booking",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				c, err := opts.client()
				if err != nil {
					return err
				}
				booking, err := c.Booking(cmd.Context(), id)
				if err != nil {
					return err
				}
				return opts.print(booking)
			},
		},
		newCreateBookingCommand(opts),
	)
	return cmd
}

func newCreateBookingCommand(opts *rootOptions) *cobra.Command {
	var userID, eventName, date, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a booking for validation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body := map[string]any{}
			// Unset flags are left out so the API reports them.
			if cmd.Flags().Changed("user-id") {
				body["user_id"] = userID
			}
			if cmd.Flags().Changed("event-name") {
				body["event_name"] = eventName
			}
			if cmd.Flags().Changed("date") {
				body["booking_date"] = date
			}
			if cmd.Flags().Changed("status") {
				body["status"] = status
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			ack, err := c.CreateBooking(cmd.Context(), body)
			if err != nil {
				return err
			}
			return opts.print(ack)
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "member id")
	cmd.Flags().StringVar(&eventName, "event-name", "", "event name")
	cmd.Flags().StringVar(&date, "date", "", "booking date, YYYY-MM-DD")
	cmd.Flags().StringVar(&status, "status", "", "booking status")
	return cmd
}

func newDashboardCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your upcoming bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			d, err := c.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			return opts.print(d)
		},
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Errorf("invalid id %q", raw)
	}
	return id, nil
}
