package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/imdbkit/internal/provider/imdb"
)

func (a *app) searchCmd() *cobra.Command {
	var kind string
	c := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles, names, companies or keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := imdb.ParseSearchKind(kind)
			if err != nil {
				return fail(err)
			}
			hits, err := a.client.Search().Find(cmd.Context(), strings.Join(args, " "), k)
			return printValue(cmd, hits, err)
		},
	}
	c.Flags().StringVarP(&kind, "kind", "k", "tt", "What to search: tt, nm, co or kw")
	return c
}

func (a *app) keywordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keyword <keyword>",
		Short: "List the titles tagged with a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			titles, err := a.client.Lists().KeywordTitles(cmd.Context(), args[0])
			return printValue(cmd, titles, err)
		},
	}
}

func (a *app) newsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "news [top|movie|tv|celebrity]",
		Short: "Show the latest news of a category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := imdb.NewsTop
			if len(args) == 1 {
				c, err := imdb.ParseNewsCategory(args[0])
				if err != nil {
					return fail(err)
				}
				category = c
			}
			items, err := a.client.Lists().News(cmd.Context(), category)
			return printValue(cmd, items, err)
		},
	}
}

func (a *app) boxOfficeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "boxoffice",
		Aliases: []string{"box-office"},
		Short:   "Show the weekend box-office chart",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chart, err := a.client.Lists().BoxOffice(cmd.Context())
			return printValue(cmd, chart, err)
		},
	}
}
