package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var personParts = []string{"full", "main", "overview", "bio"}

func (a *app) personCmd() *cobra.Command {
	var part string
	c := &cobra.Command{
		Use:     "person <id>",
		Aliases: []string{"name"},
		Short:   "Look up a person by their nm id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			l := a.client.Person(id)
			ctx := cmd.Context()
			switch part {
			case "full":
				p, err := l.Full(ctx)
				return printRecord(cmd, "person", id, p, err)
			case "main":
				p, err := l.Main(ctx)
				return printRecord(cmd, "person", id, p, err)
			case "overview":
				v, err := l.Overview(ctx)
				return printValue(cmd, v, err)
			case "bio":
				v, err := l.DisplayBio(ctx)
				return printValue(cmd, v, err)
			}
			return fmt.Errorf("unknown part %q (want one of %s)", part, strings.Join(personParts, ", "))
		},
	}
	c.Flags().StringVar(&part, "part", "full", "Piece to print: "+strings.Join(personParts, ", "))
	return c
}

func (a *app) companyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "company <id>",
		Short: "Look up a company by its co id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client.Company(args[0]).Full(cmd.Context())
			return printRecord(cmd, "company", args[0], c, err)
		},
	}
}

func (a *app) videoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "video <id>",
		Short: "Look up a trailer or clip by its vi id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.client.Video(args[0]).Full(cmd.Context())
			return printRecord(cmd, "video", args[0], v, err)
		},
	}
}
