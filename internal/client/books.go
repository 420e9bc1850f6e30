package client

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/hksalaudeen/bookman/models"
	"github.com/spf13/cobra"
)

func (a *App) booksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Manage the book catalogue",
	}

	cmd.AddCommand(
		a.booksListCommand(),
		a.booksAddCommand(),
		a.booksUpdateCommand(),
		a.booksDeleteCommand(),
	)

	return cmd
}

func (a *App) booksListCommand() *cobra.Command {
	var filter models.BookFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally filtered by author and year",
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := a.adapter.ListBooks(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("listing books failed: %w", err)
			}

			if len(books) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no books found")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR\tOWNER")
			for _, b := range books {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", b.BookID, b.Title, b.Author, b.PublicationYear, b.UserID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&filter.Author, "author", "", "exact author match")
	cmd.Flags().IntVar(&filter.PublicationYear, "year", 0, "exact publication year match")

	return cmd
}

func (a *App) booksAddCommand() *cobra.Command {
	var request models.CreateBookRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book owned by the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.adapter.CreateBook(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("adding book failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added book %d: %s by %s (%d)\n",
				book.BookID, book.Title, book.Author, book.PublicationYear)
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Title, "title", "", "book title")
	cmd.Flags().StringVar(&request.Author, "author", "", "book author")
	cmd.Flags().IntVar(&request.PublicationYear, "year", 0, "year of publication")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("author")
	cmd.MarkFlagRequired("year")

	return cmd
}

func (a *App) booksUpdateCommand() *cobra.Command {
	var (
		title  string
		author string
		year   int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a book you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book id %q", args[0])
			}

			// only flags the user actually set become part of the patch
			var request models.UpdateBookRequest
			if cmd.Flags().Changed("title") {
				request.Title = &title
			}
			if cmd.Flags().Changed("author") {
				request.Author = &author
			}
			if cmd.Flags().Changed("year") {
				request.PublicationYear = &year
			}

			if request.Empty() {
				return fmt.Errorf("nothing to update: set --title, --author or --year")
			}

			book, err := a.adapter.UpdateBook(cmd.Context(), bookID, request)
			if err != nil {
				return fmt.Errorf("updating book failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated book %d: %s by %s (%d)\n",
				book.BookID, book.Title, book.Author, book.PublicationYear)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&author, "author", "", "new author")
	cmd.Flags().IntVar(&year, "year", 0, "new publication year")

	return cmd
}

func (a *App) booksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a book you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book id %q", args[0])
			}

			if err := a.adapter.DeleteBook(cmd.Context(), bookID); err != nil {
				return fmt.Errorf("deleting book failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted book %d\n", bookID)
			return nil
		},
	}
}
