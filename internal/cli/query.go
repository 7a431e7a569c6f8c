package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/spf13/cobra"
)

func newCategoriesCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories with their page counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := s.registry()
			if err != nil {
				return err
			}
			stats := catalog.Summarize(r.Categories(), r.Pages())

			t := newTable("ID", "LABEL", "PAGES", "DESCRIPTION")
			for _, c := range r.Categories() {
				t.Row(string(c.ID), c.Label, strconv.Itoa(stats.ByCategory[c.ID]), c.Description)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}

func newListCommand(s *state) *cobra.Command {
	var category, difficulty, tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pages, optionally filtered",
		Example: `  catalogctl list --category react-hooks
  catalogctl list --difficulty beginner --tag "tailwind css"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := catalog.Filter{Tag: tag}
			if category != "" {
				id, ok := catalog.ParseCategoryID(category)
				if !ok {
					return fmt.Errorf("unknown category %q (expected one of %s)", category, joinIDs(catalog.CategoryIDs()))
				}
				filter.Category = id
			}
			if difficulty != "" {
				d, ok := catalog.ParseDifficulty(difficulty)
				if !ok {
					return fmt.Errorf("unknown difficulty %q (expected beginner, intermediate or advanced)", difficulty)
				}
				filter.Difficulty = d
			}

			r, err := s.registry()
			if err != nil {
				return err
			}
			pages := catalog.FilterPages(r.Pages(), filter)
			out := cmd.OutOrStdout()
			if len(pages) == 0 {
				_, err := fmt.Fprintln(out, mutedStyle.Render("no pages match"))
				return err
			}

			t := newTable("ID", "TITLE", "CATEGORY", "DIFFICULTY", "TAGS")
			for _, p := range pages {
				t.Row(p.ID, p.Title, string(p.Category), badge(p.Difficulty), strings.Join(p.Tags, ", "))
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only pages of this category")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "only pages of this difficulty")
	cmd.Flags().StringVar(&tag, "tag", "", "only pages carrying this tag (case-insensitive)")
	return cmd
}

func newShowCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show <page-id>",
		Short: "Show one page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := s.registry()
			if err != nil {
				return err
			}
			p, ok := r.PageByID(args[0])
			if !ok {
				return fmt.Errorf("page %q not found", args[0])
			}
			c, _ := r.Category(p.Category)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(p.Title)+"  "+badge(p.Difficulty))
			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("id:      "), p.ID)
			fmt.Fprintf(out, "%s %s (%s)\n", mutedStyle.Render("category:"), c.Label, p.Category)
			if len(p.Tags) > 0 {
				fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("tags:    "), strings.Join(p.Tags, ", "))
			}
			_, err = fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("path:    "), catalog.ExamplePath(p))
			return err
		},
	}
}

func joinIDs(ids []catalog.CategoryID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
