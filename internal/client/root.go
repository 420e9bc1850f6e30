package client

import (
	"github.com/spf13/cobra"
)

// RootCommand builds the full bookman command tree.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookman",
		Short: "Command line client for the bookman book catalogue",
		Long: `bookman talks to a running bookman server.

Register an account, log in once, then manage your books:

  bookman register --name Alice --email alice@example.com --password secret
  bookman login --email alice@example.com --password secret
  bookman books add --title "Things Fall Apart" --author "Chinua Achebe" --year 1958
  bookman books list --author "Chinua Achebe"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.booksCommand(),
	)

	return root
}
