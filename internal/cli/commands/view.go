package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/ui"
	"github.com/fdieguez/sgp/internal/tabular"
)

var (
	viewSearch   string
	viewSort     string
	viewDesc     bool
	viewFilters  []string
	viewChart    string
	viewPage     int
	viewPageSize int
	viewNoChart  bool
)

// viewCmd is the view command
var viewCmd = &cobra.Command{
	Use:   "view <configId>",
	Short: "render a one-shot view of a snapshot",
	Long: `Fetch the stored snapshot of a planilla and render one derived view:
a filtered, sorted, paginated table plus the categorical distribution of
one column as a bar chart.

Columns are referenced by header name (case-insensitive) or by 1-based
position. Date columns filter by year.`,
	Example: `  # Plain first page
  $ sgpctl view 3

  # Search and sort
  $ sgpctl view 3 --search lopez --sort "Fecha Ingreso" --desc

  # Filter by column value and chart another column
  $ sgpctl view 3 --filter Estado=PENDING --chart Origen

  # Deeper pages
  $ sgpctl view 3 --page 4 --page-size 25`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewSearch, "search", "", "Free-text search over all columns")
	viewCmd.Flags().StringVar(&viewSort, "sort", "", "Column to sort by")
	viewCmd.Flags().BoolVar(&viewDesc, "desc", false, "Sort descending")
	viewCmd.Flags().StringArrayVar(&viewFilters, "filter", nil, "Column filter as col=value (repeatable)")
	viewCmd.Flags().StringVar(&viewChart, "chart", "", "Column to chart")
	viewCmd.Flags().IntVar(&viewPage, "page", 1, "Page number")
	viewCmd.Flags().IntVar(&viewPageSize, "page-size", tabular.DefaultPageSize, "Rows per page")
	viewCmd.Flags().BoolVar(&viewNoChart, "no-chart", false, "Suppress the bar chart")

	viewCmd.SilenceUsage = true
}

func runView(cmd *cobra.Command, args []string) error {
	configID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || configID <= 0 {
		ui.PrintError("invalid config id: %s", args[0])
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	project, err := apiClient.GetProject(ctx, configID)
	if err != nil {
		ui.PrintError("failed to fetch snapshot: %v", err)
		return fmt.Errorf("fetch failed")
	}

	table := tabular.FromStrings(project.Data)
	if table.Empty() {
		ui.PrintWarning("snapshot for planilla %d holds no data, run 'sgpctl sync %d' first", configID, configID)
		return nil
	}

	state, err := buildViewState(table)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	view := tabular.BuildView(table, state)

	fmt.Println()
	ui.PrintBold(project.Name)
	fmt.Println()
	fmt.Println(ui.RenderViewTable(view))
	if !viewNoChart {
		chart := ui.RenderBarChart(view)
		if chart != "" {
			fmt.Println(chart)
		}
	}
	fmt.Println(ui.RenderViewSummary(view))

	return nil
}

// buildViewState folds the command flags into the engine's state.
func buildViewState(table tabular.Table) (tabular.ViewState, error) {
	state := tabular.NewViewState()

	if viewSearch != "" {
		state = state.Apply(tabular.SetSearch{Term: viewSearch})
	}

	for _, f := range viewFilters {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) != 2 || parts[1] == "" {
			return state, fmt.Errorf("invalid filter %q, expected col=value", f)
		}
		col, err := resolveColumn(table.Headers, parts[0])
		if err != nil {
			return state, err
		}
		state = state.Apply(tabular.SetFilter{Column: col, Value: parts[1]})
	}

	if viewSort != "" {
		col, err := resolveColumn(table.Headers, viewSort)
		if err != nil {
			return state, err
		}
		state = state.Apply(tabular.ToggleSort{Column: col})
		if viewDesc {
			state = state.Apply(tabular.ToggleSort{Column: col})
		}
	}

	if viewChart != "" {
		col, err := resolveColumn(table.Headers, viewChart)
		if err != nil {
			return state, err
		}
		state = state.Apply(tabular.SetChartColumn{Column: col})
	}

	if viewPageSize > 0 && viewPageSize != tabular.DefaultPageSize {
		state = state.Apply(tabular.SetPageSize{Size: viewPageSize})
	}
	if viewPage > 1 {
		state = state.Apply(tabular.SetPage{Page: viewPage})
	}

	return state, nil
}

// resolveColumn maps a header name (case-insensitive) or 1-based
// position to a column index.
func resolveColumn(headers []string, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	for i, h := range headers {
		if strings.EqualFold(h, ref) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(headers) {
			return n - 1, nil
		}
		return 0, fmt.Errorf("column %d out of range (table has %d columns)", n, len(headers))
	}
	return 0, fmt.Errorf("unknown column %q", ref)
}
