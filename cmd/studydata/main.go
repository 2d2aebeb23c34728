// Package main provides the CLI entry point for studydata.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/studyhub-app/studydata-go/pkg/studydata"
	"github.com/studyhub-app/studydata-go/pkg/studydata/sample"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

const defaultSamplePath = "StudyHub_Complete_Data.xlsx"

var (
	outputPath string
	pretty     bool
	patchPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "studydata",
		Short: "Validate, convert, and update StudyHub content workbooks",
		Long: `studydata converts educational content workbooks to the JSON dataset the
study-app frontend consumes, validates their structure and content coverage,
and merges incremental content updates back into the workbook.`,
		SilenceUsage: true,
	}

	createSampleCmd := &cobra.Command{
		Use:   "create-sample",
		Short: "Create a sample workbook with all required sheets and demo data",
		Args:  cobra.NoArgs,
		RunE:  runCreateSample,
	}
	createSampleCmd.Flags().StringVarP(&outputPath, "output", "o", defaultSamplePath, "Output workbook path")

	validateCmd := &cobra.Command{
		Use:   "validate [input.xlsx]",
		Short: "Validate a workbook against the sheet schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	coverageCmd := &cobra.Command{
		Use:   "validate-coverage [input.xlsx]",
		Short: "Check cross-table content coverage rules",
		Args:  cobra.ExactArgs(1),
		RunE:  runCoverage,
	}

	exportCmd := &cobra.Command{
		Use:   "export-json [input.xlsx]",
		Short: "Export workbook data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input with .json extension)")
	exportCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	updateCmd := &cobra.Command{
		Use:   "update [input.xlsx]",
		Short: "Merge a JSON content patch into the workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}
	updateCmd.Flags().StringVar(&patchPath, "patch", "", "Patch JSON file (required)")
	updateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: overwrite input)")
	_ = updateCmd.MarkFlagRequired("patch")

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the sheet schema and valid vocabularies",
		Args:  cobra.NoArgs,
		Run:   runSchema,
	}

	rootCmd.AddCommand(createSampleCmd, validateCmd, coverageCmd, exportCmd, updateCmd, schemaCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCreateSample(cmd *cobra.Command, args []string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	ds := sample.Dataset()
	if err := studydata.Save(outputPath, ds); err != nil {
		return fmt.Errorf("create sample failed: %w", err)
	}

	fmt.Printf("Sample workbook created: %s\n", outputPath)
	fmt.Printf("Sheets created: %s\n", strings.Join(ds.Names(), ", "))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	ds, err := studydata.Load(args[0])
	if err != nil {
		return fmt.Errorf("validation aborted: %w", err)
	}

	res := studydata.Validate(ds)
	if len(res.Errors) > 0 {
		fmt.Println("ERRORS:")
		for _, e := range res.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	if len(res.Warnings) > 0 {
		fmt.Println("WARNINGS:")
		for _, w := range res.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	switch {
	case res.OK() && len(res.Warnings) == 0:
		fmt.Println("Validation passed. No issues found.")
	case res.OK():
		fmt.Println("Validation passed with warnings.")
	default:
		fmt.Println("Validation failed. Please fix errors before using.")
		os.Exit(1)
	}
	return nil
}

func runCoverage(cmd *cobra.Command, args []string) error {
	ds, err := studydata.Load(args[0])
	if err != nil {
		return fmt.Errorf("coverage check aborted: %w", err)
	}

	ok, errs := studydata.ValidateCoverage(ds)
	if !ok {
		fmt.Println("COVERAGE FAILED:")
		for _, e := range errs {
			fmt.Printf("  - %s\n", e)
		}
		os.Exit(1)
	}
	fmt.Println("Coverage check passed. All topics have required handouts, quizzes, and objectives.")
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	ds, err := studydata.Load(inputPath)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	data, err := studydata.ExportJSON(ds, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("JSON exported: %s\n", out)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	ds, err := studydata.Load(inputPath)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	patch, err := studydata.LoadPatch(patchPath)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	merged, err := studydata.ApplyPatch(ds, patch)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	out := outputPath
	if out == "" {
		out = inputPath
	}
	if err := studydata.Save(out, merged); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	fmt.Printf("Update complete: %s\n", out)
	return nil
}

func runSchema(cmd *cobra.Command, args []string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Sheet", "Required Columns", "All Columns", "Description"})
	for _, tbl := range schema.Tables {
		tw.AppendRow(table.Row{
			tbl.Name,
			strings.Join(tbl.Required, ", "),
			strings.Join(tbl.Columns, ", "),
			tbl.Description,
		})
	}
	tw.Render()

	fmt.Println()
	fmt.Printf("Valid content types: %s\n", strings.Join(schema.ContentTypes, ", "))
	fmt.Printf("Valid section types: %s\n", strings.Join(schema.SectionTypes, ", "))
	fmt.Printf("Valid icons: %s\n", strings.Join(schema.Icons, ", "))
}
