package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/b3/b3t/internal/config"
	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/model1"
	"github.com/b3/b3t/internal/render"
)

const listTimeout = 30 * time.Second

type listOptions struct {
	window  model1.PageWindow
	search  string
	orderBy string
	desc    bool
	wide    bool
	mobile  bool
}

func newListCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list RESOURCE",
		Short: "Print one page of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f, err := newFactory(cfg.B3t.Catalog)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), listTimeout)
			defer cancel()

			return listResource(ctx, cmd.OutOrStdout(), f, cfg.Aliases(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.window.First, "first", model1.DefaultPageSize, "Rows to print")
	cmd.Flags().IntVar(&opts.window.Offset, "offset", 0, "Rows to skip")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Search term")
	cmd.Flags().StringVar(&opts.orderBy, "order-by", "", "Sort column")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "Sort descending")
	cmd.Flags().BoolVarP(&opts.wide, "wide", "w", false, "Show all columns")
	cmd.Flags().BoolVar(&opts.mobile, "mobile", false, "Print rows as cards")

	return cmd
}

// listResource fetches one window of a resource and prints it.
func listResource(ctx context.Context, w io.Writer, f dao.Factory, aliases *config.Aliases, name string, opts listOptions) error {
	if err := opts.window.Validate(); err != nil {
		return err
	}
	var rid dao.ResourceID
	if err := rid.Parse(aliases.Get(strings.ToLower(name))); err != nil {
		return fmt.Errorf("unknown resource: %s", name)
	}
	fetcher, err := dao.FetcherFor(f, &rid)
	if err != nil {
		return err
	}
	r, err := render.For(rid.String())
	if err != nil {
		return err
	}

	params := model1.FilterSnapshot{}
	if term := strings.TrimSpace(opts.search); term != "" {
		params[model1.ParamSearch] = term
	}
	if opts.orderBy != "" {
		sort := model1.SortState{OrderBy: opts.orderBy, Direction: model1.SortAsc}
		if opts.desc {
			sort.Direction = model1.SortDesc
		}
		params = sort.Apply(params)
	}
	res, err := fetcher.Fetch(ctx, params.Merge(opts.window))
	if err != nil {
		return fmt.Errorf("list %s: %w", rid.Resource, err)
	}

	rows := res.Rows()
	if opts.mobile {
		for i, row := range rows {
			fmt.Fprintln(w, strings.Join(r.RenderItem(row, opts.window.Offset+i), "\n"))
			fmt.Fprintln(w)
		}
	} else {
		printTable(w, r.Columns().Visible(opts.wide), rows, opts.window.Offset)
	}
	fmt.Fprintln(w, opts.window.Range(res.TotalCount))

	return nil
}

// printTable renders rows starting at the absolute index offset.
func printTable(w io.Writer, cols model1.Columns, rows model1.Rows, offset int) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(cols.Titles())
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(false)
	t.SetColumnSeparator("")
	t.SetCenterSeparator("")
	t.SetRowSeparator("")
	t.SetHeaderLine(false)
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)

	for i, row := range rows {
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, c.Cell(row, offset+i))
		}
		t.Append(cells)
	}
	t.Render()
}
