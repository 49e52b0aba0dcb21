package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/portfolio-runner/internal/config"
	"github.com/vovakirdan/portfolio-runner/internal/games/runner"
)

var (
	topicTitleStyle = color.Style{color.FgCyan, color.OpBold}
	topicIDStyle    = color.Style{color.FgGray}
	topicNoteStyle  = color.Style{color.FgYellow}
	topicLinkStyle  = color.Style{color.FgBlue}
	topicUsedStyle  = color.Style{color.FgMagenta}
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Print the topic table",
	Long:  `Prints every topic with its message, links and the stages that show it.`,
	Run: func(cmd *cobra.Command, args []string) {
		writeTopics(os.Stdout, runnerCfg)
	},
}

// writeTopics prints the topic table of cfg in declaration order.
func writeTopics(w io.Writer, cfg config.RunnerConfig) {
	table := runner.NewTable(cfg.Topics)
	used := topicUsage(cfg)

	for i, t := range table.All() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", topicTitleStyle.Sprint(t.Title), topicIDStyle.Sprintf("(%s)", t.ID))
		fmt.Fprintf(w, "  %s\n", t.Message)
		if t.Note != "" {
			fmt.Fprintf(w, "  %s\n", topicNoteStyle.Sprint(t.Note))
		}
		for _, l := range t.Links {
			fmt.Fprintf(w, "  - %s: %s\n", l.Label, topicLinkStyle.Sprint(l.URL))
		}
		if u := used[string(t.ID)]; len(u) > 0 {
			fmt.Fprintf(w, "  %s\n", topicUsedStyle.Sprint("shown in: "+strings.Join(u, ", ")))
		}
	}
}

// topicUsage maps topic IDs to the "variant/stage" places that show them.
func topicUsage(cfg config.RunnerConfig) map[string][]string {
	names := make([]string, 0, len(cfg.Variants))
	for name := range cfg.Variants {
		names = append(names, name)
	}
	sort.Strings(names)

	used := make(map[string][]string)
	for _, name := range names {
		for i, p := range cfg.Variants[name].Phases {
			for _, m := range p.Markers {
				used[m.Topic] = append(used[m.Topic], fmt.Sprintf("%s/%d", name, i+1))
			}
		}
	}
	return used
}
