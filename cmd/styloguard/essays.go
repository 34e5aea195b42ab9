// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/styloguard/internal/essays"
	"github.com/pdiddy/styloguard/internal/features"
	"github.com/pdiddy/styloguard/pkg/types"
)

var essaysCmd = &cobra.Command{
	Use:   "essays",
	Short: "Manage saved essays (save, list, export)",
	Long: `Essays manages the local SQLite database of students and their analysed
essays. Saved essays become the reference profile used by compare --student-id.`,
}

// --- save subcommand ---

var essaysSaveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Analyse an essay and save it with its fingerprint",
	Long: `Save analyses the essay, adds the student if they are not yet known and
stores the essay with its stylometric fingerprint. An essay whose text is
already saved for the student is not stored again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEssaysSave,
}

func runEssaysSave(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt64("student-id")
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	inline, _ := cmd.Flags().GetString("text")

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	text, err := textInput(inline, path, "text or a file argument")
	if err != nil {
		return err
	}

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	svc, cleanup, err := newService(cfg, false)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	fs, err := svc.AnalyzeText(ctx, text)
	if err != nil {
		return err
	}

	store, err := essays.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	out, err := store.Save(ctx, types.Student{ID: id, Name: name, Email: email}, text, fs)
	if err != nil {
		return err
	}
	printSaveOutcome(os.Stdout, out)
	return nil
}

func printSaveOutcome(w io.Writer, out essays.SaveOutcome) {
	if out.StudentAdded {
		fmt.Fprintln(w, "Student added.")
	} else {
		fmt.Fprintln(w, "Student exists.")
	}
	if out.EssaySaved {
		fmt.Fprintf(w, "Essay saved. (%s)\n", out.Essay.ID)
	} else {
		fmt.Fprintln(w, "Essay already in DB.")
	}
}

// --- list subcommand ---

var essaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students, or the essays of one student",
	RunE:  runEssaysList,
}

func runEssaysList(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt64("student-id")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	store, err := essays.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if id > 0 {
		list, err := store.StudentEssays(ctx, id)
		if err != nil {
			return err
		}
		return writeEssayList(os.Stdout, list)
	}

	students, err := store.Students(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Println("No students saved.")
		return nil
	}
	table := newTable(os.Stdout, "ID", "Name", "Email")
	for _, st := range students {
		table.Append([]string{strconv.FormatInt(st.ID, 10), st.Name, st.Email})
	}
	table.Render()
	return nil
}

func writeEssayList(w io.Writer, list []types.Essay) error {
	if len(list) == 0 {
		fmt.Fprintln(w, "No essays saved.")
		return nil
	}
	table := newTable(w, "ID", "Saved", "Words", "Excerpt")
	for _, e := range list {
		fs, err := essays.Fingerprint(e)
		if err != nil {
			return err
		}
		excerpt := []rune(e.Text)
		if len(excerpt) > 40 {
			excerpt = append(excerpt[:37], []rune("...")...)
		}
		table.Append([]string{
			e.ID,
			e.CreatedAt.Format("2006-01-02 15:04"),
			formatNumber(fs.Value(features.TotalWordCount, features.KeyCount)),
			string(excerpt),
		})
	}
	table.Render()
	fmt.Fprintf(w, "\n%d essays\n", len(list))
	return nil
}

// --- export subcommand ---

var essaysExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export students and essays to YAML or JSON",
	Long: `Export writes every student with their essays and decoded fingerprints
to <data-dir>/export/essays.yaml or essays.json.`,
	RunE: runEssaysExport,
}

func runEssaysExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	store, err := essays.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	var path string
	switch format {
	case "yaml", "yml":
		path, err = store.ExportYAML(ctx)
	case "json":
		path, err = store.ExportJSON(ctx)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

func init() {
	essaysSaveCmd.Flags().Int64("student-id", 0, "student identifier (required)")
	essaysSaveCmd.Flags().String("name", "", "student name (required)")
	essaysSaveCmd.Flags().String("email", "", "student email (required)")
	essaysSaveCmd.Flags().String("text", "", "inline essay text instead of a file")

	essaysListCmd.Flags().Int64("student-id", 0, "list the essays of this student")

	essaysExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	essaysCmd.AddCommand(essaysSaveCmd)
	essaysCmd.AddCommand(essaysListCmd)
	essaysCmd.AddCommand(essaysExportCmd)
	rootCmd.AddCommand(essaysCmd)
}
