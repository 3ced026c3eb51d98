package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var titleParts = []string{"full", "main", "keywords", "trailers", "plot", "taglines", "locations", "parental-guide"}

func (a *app) titleCmd() *cobra.Command {
	var part string
	c := &cobra.Command{
		Use:   "title <id>",
		Short: "Look up a title by its tt id",
		Long: `Look up a movie, series or episode. The full record merges the query API
with the taglines, parental guide and filming locations pages; --part prints a
single piece instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			l := a.client.Title(id)
			ctx := cmd.Context()
			switch part {
			case "full":
				t, err := l.Full(ctx)
				return printRecord(cmd, "title", id, t, err)
			case "main":
				t, err := l.Main(ctx)
				return printRecord(cmd, "title", id, t, err)
			case "keywords":
				v, err := l.Keywords(ctx)
				return printValue(cmd, v, err)
			case "trailers":
				v, err := l.Trailers(ctx)
				return printValue(cmd, v, err)
			case "plot":
				v, err := l.Plot(ctx)
				return printValue(cmd, v, err)
			case "taglines":
				v, err := l.Taglines(ctx)
				return printValue(cmd, v, err)
			case "locations":
				v, err := l.Locations(ctx)
				return printValue(cmd, v, err)
			case "parental-guide":
				v, err := l.ParentalGuide(ctx)
				return printValue(cmd, v, err)
			}
			return fmt.Errorf("unknown part %q (want one of %s)", part, strings.Join(titleParts, ", "))
		},
	}
	c.Flags().StringVar(&part, "part", "full", "Piece to print: "+strings.Join(titleParts, ", "))
	return c
}

// printValue prints a list or fragment result, which has no identity to check.
func printValue(cmd *cobra.Command, v any, err error) error {
	if err != nil {
		return fail(err)
	}
	return printJSON(cmd, v)
}
