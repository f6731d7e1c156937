package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/urbansymbiosis/dashboard-api/internal/client"
	"github.com/urbansymbiosis/dashboard-api/internal/lib/utils"
)

const defaultAPIURL = "http://localhost:5000"

type rootOptions struct {
	apiURL string
	token  string
	out    io.Writer
}

// client builds an API client, authenticated when a token is known.
func (o *rootOptions) client() (*client.Client, error) {
	return client.New(o.apiURL, client.WithToken(o.token))
}

func (o *rootOptions) print(v any) error {
	return utils.PrintJSON(o.out, v)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{out: out}

	cmd := &cobra.Command{
		Use:           "symbiosis",
		Short:         "Talk to the Urban Symbiosis dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", envOr("SYMBIOSIS_API_URL", defaultAPIURL), "API base URL (env SYMBIOSIS_API_URL)")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("SYMBIOSIS_TOKEN"), "access token from login (env SYMBIOSIS_TOKEN)")

	cmd.AddCommand(
		newLoginCommand(opts),
		newUsersCommand(opts),
		newBookingsCommand(opts),
		newDashboardCommand(opts),
	)
	return cmd
}
