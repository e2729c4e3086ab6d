// Command modio is a small helper around the SDK: it runs the email
// authentication flow and fetches games, mods and the authenticated user,
// printing results as JSON.
//
// Configuration comes from the environment (a .env file is honored):
//
//	MODIO_API_KEY       api key from https://mod.io/apikey (required)
//	MODIO_ACCESS_TOKEN  OAuth2 access token (optional)
//	MODIO_TOKEN_FILE    where `modio auth` stores the token (default modio-token)
//	MODIO_BASE_URL      API base URL override, for testing
//	MODIO_TEST_ENV      set to true to use the mod.io test environment
//	MODIO_TIMEOUT       per-request timeout (default 30s)
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	modio "github.com/modio/modio-go"
)

type config struct {
	APIKey      string        `env:"MODIO_API_KEY"`
	AccessToken string        `env:"MODIO_ACCESS_TOKEN"`
	TokenFile   string        `env:"MODIO_TOKEN_FILE" envDefault:"modio-token"`
	BaseURL     string        `env:"MODIO_BASE_URL"`
	Test        bool          `env:"MODIO_TEST_ENV"`
	Timeout     time.Duration `env:"MODIO_TIMEOUT" envDefault:"30s"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "modio:", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	var (
		client  *modio.Client
		verbose bool
	)

	root := &cobra.Command{
		Use:           "modio",
		Short:         "Query the mod.io API and run the email authentication flow",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts := []modio.Option{}
			if cfg.APIKey != "" {
				opts = append(opts, modio.WithAPIKey(cfg.APIKey))
			}
			if cfg.AccessToken != "" {
				opts = append(opts, modio.WithAccessToken(cfg.AccessToken))
			} else if token, err := modio.LoadAccessToken(cfg.TokenFile); err == nil {
				opts = append(opts, modio.WithAccessToken(token))
			}
			if cfg.BaseURL != "" {
				opts = append(opts, modio.WithBaseURL(cfg.BaseURL))
			}
			if cfg.Test {
				opts = append(opts, modio.WithTestEnvironment())
			}
			if cfg.Timeout > 0 {
				opts = append(opts, modio.WithTimeout(cfg.Timeout))
			}
			if verbose {
				logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
					With().Timestamp().Logger()
				opts = append(opts, modio.WithLogger(logger))
			}

			c, err := modio.New(opts...)
			if err != nil {
				return err
			}
			client = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if client != nil {
				return client.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every API request")

	var email string
	auth := &cobra.Command{
		Use:   "auth",
		Short: "Obtain an access token via the email authentication flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			msg, err := client.EmailRequest(ctx, email)
			if err != nil {
				return fmt.Errorf("request security code: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)

			fmt.Fprint(cmd.OutOrStdout(), "Code: ")
			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() {
				return fmt.Errorf("no code entered")
			}
			code := strings.TrimSpace(scanner.Text())

			token, err := client.EmailExchange(ctx, code)
			if err != nil {
				return fmt.Errorf("exchange security code: %w", err)
			}

			if err := modio.SaveAccessToken(cfg.TokenFile, token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "access token saved to %s\n", cfg.TokenFile)
			return nil
		},
	}
	auth.Flags().StringVarP(&email, "email", "e", "", "email address to send the security code to")
	auth.MarkFlagRequired("email")

	game := &cobra.Command{
		Use:   "game <id>",
		Short: "Fetch a game by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}
			g, err := client.GetGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd, g)
		},
	}

	mod := &cobra.Command{
		Use:   "mod <game-id> <mod-id>",
		Short: "Fetch a mod by game and mod ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid game id %q", args[0])
			}
			modID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid mod id %q", args[1])
			}

			g, err := client.GetGame(cmd.Context(), gameID)
			if err != nil {
				return err
			}
			m, err := g.Mod(cmd.Context(), modID)
			if err != nil {
				return err
			}
			return printJSON(cmd, m)
		},
	}

	me := &cobra.Command{
		Use:   "me",
		Short: "Fetch the authenticated user (requires an access token)",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}

	root.AddCommand(auth, game, mod, me)
	return root.Execute()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
