package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/agent-story/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs",
	Long:  `List all runs previously archived with parse --archive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := openArchive()
		if err != nil {
			return fmt.Errorf("failed to open run archive: %w", err)
		}
		defer archive.Close()

		runs, err := archive.ListRuns()
		if err != nil {
			return err
		}

		displayRuns(runs)
		return nil
	},
}

func displayRuns(runs []internal.Run) {
	if len(runs) == 0 {
		fmt.Println(headerStyle.Render("No archived runs found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("Found %d archived run(s)", len(runs)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns with better spacing
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Source")+"\t"+titleStyle.Render("Agents")+"\t"+titleStyle.Render("Events")+"\t"+titleStyle.Render("Dropped")+"\t"+titleStyle.Render("Created")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, run := range runs {
		source := run.Source
		if len(source) > 40 {
			source = "..." + source[len(source)-37:]
		}

		dropped := strconv.Itoa(run.Dropped)
		if run.Dropped > 0 {
			dropped = warnStyle.Render(dropped)
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			idStyle.Render(strconv.FormatInt(run.ID, 10)),
			source,
			countStyle.Render(strconv.Itoa(run.Agents)),
			countStyle.Render(strconv.Itoa(run.Events)),
			dropped,
			dateStyle.Render(formatRunDate(run.CreatedAt)),
		)
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("Tip: use `agent-story show <id>` to display an archived story"))
}

func formatRunDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	now := time.Now()
	diff := now.Sub(t)
	switch {
	case diff < 24*time.Hour:
		return t.Local().Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Local().Format("Mon 15:04")
	default:
		return t.Local().Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
