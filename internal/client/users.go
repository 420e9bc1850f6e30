package client

import (
	"fmt"

	"github.com/hksalaudeen/bookman/models"
	"github.com/spf13/cobra"
)

func (a *App) registerCommand() *cobra.Command {
	var request models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.adapter.Register(cmd.Context(), request); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "account created, now run `bookman login`")
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "display name")
	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var request models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and save the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.adapter.Login(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if err := a.session.Save(token); err != nil {
				return fmt.Errorf("could not save session: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.session.Clear(); err != nil {
				return fmt.Errorf("could not clear session: %w", err)
			}

			a.adapter.SetToken("")
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
