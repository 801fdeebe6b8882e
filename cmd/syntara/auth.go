package main

import (
	"errors"
	"fmt"

	"github.com/MichalMitros/syntara-client/internal/api"
	"github.com/spf13/cobra"
)

// errBadCredentials is returned when backend rejects login credentials.
var errBadCredentials = errors.New("invalid email or password")

func newLoginCmd(a *app) *cobra.Command {
	var credentials api.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Syntara",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Login(cmd.Context(), credentials)
			if errors.Is(err, api.ErrSessionExpired) {
				return errBadCredentials
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Bienvenido, %s.\n", resp.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentials.Email, "email", "", "account email")
	cmd.Flags().StringVar(&credentials.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada.")
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var registration api.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create Syntara account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Register(cmd.Context(), registration); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Cuenta creada. Inicia sesión para continuar.")
			return nil
		},
	}

	cmd.Flags().StringVar(&registration.Name, "name", "", "first name")
	cmd.Flags().StringVar(&registration.Lastname, "lastname", "", "last name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "account email")
	cmd.Flags().StringVar(&registration.Password, "password", "", "account password")
	for _, name := range []string{"name", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show logged in user and plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if !a.store.IsLoggedIn() {
				used, err := a.quota.Used(cmd.Context())
				if err != nil {
					return err
				}
				printUser(out, nil, nil)
				fmt.Fprintf(out, "Búsquedas gratuitas usadas: %d\n", used)
				return nil
			}

			plan, err := a.client.MyPlan(cmd.Context())
			if err != nil {
				return err
			}

			printUser(out, a.store.CurrentUser(), plan)
			return nil
		},
	}
}
