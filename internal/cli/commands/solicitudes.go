package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fdieguez/sgp/internal/cli/types"
	"github.com/fdieguez/sgp/internal/cli/ui"
	"github.com/fdieguez/sgp/internal/tabular"
)

var (
	solicitudesSortBy string
	solicitudesDesc   bool
	solicitudesBy     string
)

// solicitudesCmd is the solicitudes command
var solicitudesCmd = &cobra.Command{
	Use:   "solicitudes <configId>",
	Short: "list the case records of a planilla",
	Long: `List the case records imported from one planilla.

Records can be sorted by structured fields (dates sort chronologically,
amounts numerically, text alphabetically; records missing the field go
last) and are summarized by a categorical dimension.`,
	Example: `  # Records of planilla 3, newest first
  $ sgpctl solicitudes 3 --sort-by entry --desc

  # Largest subsidies first, grouped by responsable
  $ sgpctl solicitudes 3 --sort-by amount --desc --by responsable`,
	Args: cobra.ExactArgs(1),
	RunE: runSolicitudes,
}

func init() {
	solicitudesCmd.Flags().StringVar(&solicitudesSortBy, "sort-by", "entry", "Sort field: entry, status, origin, person, location, responsable, amount")
	solicitudesCmd.Flags().BoolVar(&solicitudesDesc, "desc", false, "Sort descending")
	solicitudesCmd.Flags().StringVar(&solicitudesBy, "by", "status", "Summary dimension: status, origin, location, responsable")

	solicitudesCmd.SilenceUsage = true
}

func runSolicitudes(cmd *cobra.Command, args []string) error {
	configID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || configID <= 0 {
		ui.PrintError("invalid config id: %s", args[0])
		return fmt.Errorf("invalid arguments")
	}

	sortKey, err := solicitudSortKey(solicitudesSortBy)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}
	groupLabel, err := solicitudGroupLabel(solicitudesBy)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	items, err := apiClient.ListSolicitudes(ctx, configID)
	if err != nil {
		ui.PrintError("failed to list solicitudes: %v", err)
		return fmt.Errorf("list operation failed")
	}

	dir := tabular.Ascending
	if solicitudesDesc {
		dir = tabular.Descending
	}
	sorted := tabular.SortByKey(items, sortKey, dir)

	fmt.Println()
	fmt.Println(ui.RenderSolicitudTable(sorted))

	summary := tabular.Aggregate(sorted, groupLabel, 0)
	if len(summary) > 0 {
		fmt.Println(ui.RenderAggregation(fmt.Sprintf("By %s", solicitudesBy), summary))
	}

	fmt.Println(ui.RenderSolicitudSummary(len(items)))

	return nil
}

// solicitudSortKey maps a sort field name to its comparison key.
func solicitudSortKey(field string) (func(types.Solicitud) tabular.Key, error) {
	switch field {
	case "entry":
		return func(s types.Solicitud) tabular.Key { return dateKey(s.EntryDate) }, nil
	case "status":
		return func(s types.Solicitud) tabular.Key { return tabular.TextKey(s.Status) }, nil
	case "origin":
		return func(s types.Solicitud) tabular.Key { return tabular.TextKey(s.Origin) }, nil
	case "person":
		return func(s types.Solicitud) tabular.Key { return nameKey(s.PersonName) }, nil
	case "location":
		return func(s types.Solicitud) tabular.Key { return nameKey(s.LocationName) }, nil
	case "responsable":
		return func(s types.Solicitud) tabular.Key { return nameKey(s.ResponsableName) }, nil
	case "amount":
		return func(s types.Solicitud) tabular.Key {
			if s.Amount == nil {
				return tabular.AbsentKey()
			}
			return tabular.NumberKey(*s.Amount)
		}, nil
	default:
		return nil, fmt.Errorf("unknown sort field %q", field)
	}
}

// solicitudGroupLabel maps a summary dimension to its bucket label.
func solicitudGroupLabel(dim string) (func(types.Solicitud) string, error) {
	switch dim {
	case "status":
		return func(s types.Solicitud) string { return s.Status }, nil
	case "origin":
		return func(s types.Solicitud) string { return s.Origin }, nil
	case "location":
		return func(s types.Solicitud) string { return s.LocationName }, nil
	case "responsable":
		return func(s types.Solicitud) string { return s.ResponsableName }, nil
	default:
		return nil, fmt.Errorf("unknown summary dimension %q", dim)
	}
}

// nameKey orders resolved reference names alphabetically; records
// without the reference go last.
func nameKey(name string) tabular.Key {
	if name == "" {
		return tabular.AbsentKey()
	}
	return tabular.TextKey(name)
}

// dateKey orders ISO dates chronologically, absent dates last.
func dateKey(s *string) tabular.Key {
	if s == nil || *s == "" {
		return tabular.AbsentKey()
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return tabular.TextKey(*s)
	}
	return tabular.NumberKey(float64(t.Unix()))
}
