package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/panelworks/cutplan"
	"github.com/panelworks/cutplan/internal/cmd/output"
	"github.com/panelworks/cutplan/pkg/catalogs"
	"github.com/panelworks/cutplan/pkg/cutlist"
	"github.com/panelworks/cutplan/pkg/reconcile"
)

// inspectCmd runs one reconciliation pass over a cutlist snapshot file
// and reports everything that needs review.
var inspectCmd = &cobra.Command{
	Use:   "inspect <cutlist.yaml>",
	Short: "Reconcile a cutlist snapshot and report findings",
	Long: `Inspect loads a part snapshot from a YAML file, runs the full
reconciliation pass, and reports detected corrections, duplicate
groups, unmerged multi-page projects, and operation suggestions.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	parts, err := cutlist.LoadFile(args[0])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	result := client.Reconcile(cmd.Context(), parts)

	format, err := output.ParseFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, result)
	}
	return printResultTables(result)
}

// newClient builds the client with the configured or embedded catalog.
func newClient() (cutplan.Client, error) {
	path := viper.GetString("catalog")
	if path == "" {
		return cutplan.New(), nil
	}
	catalog, err := catalogs.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return cutplan.New(cutplan.WithCatalog(catalog)), nil
}

// printResultTables renders each non-empty finding section.
func printResultTables(result *reconcile.Result) error {
	formatter := output.NewFormatter(output.FormatTable)

	if len(result.Corrections) > 0 {
		fmt.Println("Corrections:")
		if err := formatter.Format(os.Stdout, correctionData(result)); err != nil {
			return err
		}
	}

	if len(result.Duplicates) > 0 {
		fmt.Println("Duplicate groups:")
		data := output.Data{Headers: []string{"KEY", "PARTS", "TOTAL QTY"}}
		for _, g := range result.Duplicates {
			ids := make([]string, 0, len(g.Parts))
			for _, m := range g.Parts {
				ids = append(ids, m.Part.ID)
			}
			data.Rows = append(data.Rows, []string{g.Key, strings.Join(ids, ", "), strconv.Itoa(g.TotalQty)})
		}
		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}
	}

	if len(result.Projects) > 0 {
		fmt.Println("Unmerged projects:")
		data := output.Data{Headers: []string{"PROJECT", "BATCHES", "PARTS"}}
		for _, g := range result.Projects {
			data.Rows = append(data.Rows, []string{
				g.ProjectCode, strconv.Itoa(len(g.Batches)), strconv.Itoa(g.TotalParts),
			})
		}
		if err := formatter.Format(os.Stdout, data); err != nil {
			return err
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Println("Suggestions:")
		if err := formatter.Format(os.Stdout, suggestionData(result)); err != nil {
			return err
		}
	}

	if !result.HasFindings() {
		fmt.Println("Nothing to review.")
	}
	return nil
}

// sortedPartIDs returns the map keys in sorted order; map iteration
// order would otherwise change the table between runs.
func sortedPartIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// correctionData builds the corrections table rows in part ID order.
func correctionData(result *reconcile.Result) output.Data {
	data := output.Data{Headers: []string{"PART", "FIELD", "ORIGINAL", "NORMALIZED", "TYPE"}}
	for _, partID := range sortedPartIDs(result.Corrections) {
		for _, c := range result.Corrections[partID] {
			data.Rows = append(data.Rows, []string{partID, c.Field, c.Original, c.Normalized, string(c.Type)})
		}
	}
	return data
}

// suggestionData builds the suggestions table rows in part ID order.
func suggestionData(result *reconcile.Result) output.Data {
	data := output.Data{Headers: []string{"PART", "SUGGESTION", "DESCRIPTION", "CONFIDENCE"}}
	for _, partID := range sortedPartIDs(result.Suggestions) {
		s := result.Suggestions[partID]
		data.Rows = append(data.Rows, []string{
			partID, s.Name, s.Description, fmt.Sprintf("%.2f", s.Confidence),
		})
	}
	return data
}
