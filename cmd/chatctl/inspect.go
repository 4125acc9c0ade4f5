package main

import (
	"io"
	"strconv"
	"supachat/internal"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newTable(w io.Writer, headers ...string) *tablewriter.Table {
	header := color.New(color.BgBlack, color.FgGreen)
	table := tablewriter.NewWriter(w)
	table.SetHeader(lo.Map(headers, func(h string, _ int) string {
		return header.Render(h)
	}))
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List every persisted namespace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := internal.InspectRows(a.repository)
			if err != nil {
				return err
			}
			table := newTable(cmd.OutOrStdout(),
				"Namespace", "Session", "User", "Room", "Messages", "Unread", "Locked", "Detail")
			for _, row := range rows {
				table.Append([]string{
					row.Namespace,
					row.SessionID,
					row.User,
					row.Room,
					strconv.Itoa(row.Messages),
					strconv.Itoa(row.Unread),
					strconv.FormatBool(row.InputLocked),
					row.Detail,
				})
			}
			table.Render()
			return nil
		},
	}
}
