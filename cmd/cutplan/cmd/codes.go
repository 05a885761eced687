package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/panelworks/cutplan/internal/cmd/output"
)

// codesCmd lists the shortcode vocabulary from the operation-type catalog.
var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the operation-type shortcode vocabulary",
	Args:  cobra.NoArgs,
	RunE:  runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

func runCodes(_ *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	types := client.Catalog().List()

	format, err := output.ParseFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, types)
	}

	data := output.Data{Headers: []string{"CODE", "NAME", "CATEGORY", "DESCRIPTION"}}
	for _, t := range types {
		data.Rows = append(data.Rows, []string{t.Code, t.DisplayName(), string(t.Category), t.Description})
	}
	return output.NewFormatter(format).Format(os.Stdout, data)
}
