package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"clinic-report-service/internal/converter"
	"clinic-report-service/internal/domain/entity"
	"clinic-report-service/internal/nlp"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "voicequery",
		Short: "Offline tools for the Spanish voice report interpreter",
	}

	rootCmd.AddCommand(interpretCmd())
	rootCmd.AddCommand(categoriesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func interpretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interpret <texto>",
		Short: "Print how a sentence is interpreted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			monthSlack, _ := cmd.Flags().GetInt("month-slack")
			category, _ := cmd.Flags().GetString("category")
			timezone, _ := cmd.Flags().GetString("tz")

			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("unknown timezone %q: %w", timezone, err)
			}

			ref := time.Now().In(loc)
			if date != "" {
				ref, err = time.ParseInLocation("2006-01-02", date, loc)
				if err != nil {
					return fmt.Errorf("invalid --date %q, use YYYY-MM-DD", date)
				}
			}

			interpreter := nlp.NewInterpreter(nlp.WithMonthSlack(monthSlack))
			text := strings.Join(args, " ")

			var q *entity.QueryInterpretation
			if category != "" {
				forced, ok := entity.ParseReportCategory(category)
				if !ok {
					return fmt.Errorf("unknown --category %q", category)
				}
				q = interpreter.InterpretAs(text, ref, forced)
			} else {
				q = interpreter.Interpret(text, ref)
			}

			return printJSON(cmd.OutOrStdout(), converter.InterpretationToResponse(q))
		},
	}

	cmd.Flags().String("date", "", "Reference date (YYYY-MM-DD), defaults to today")
	cmd.Flags().Int("month-slack", -1, "Roll month-name dates back a year when more than N months ahead")
	cmd.Flags().String("category", "", "Force the report type (citas, facturas, tratamientos, pacientes, ingresos)")
	cmd.Flags().String("tz", "America/La_Paz", "Timezone used for today")

	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the report types a query can be routed to",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range entity.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", c, c.DisplayName())
			}
			return nil
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
