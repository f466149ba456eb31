package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindscan/internal/stimuli"
)

var stimuliCmd = &cobra.Command{
	Use:   "stimuli",
	Short: "Print the embedded stimulus sets after validation",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := stimuli.Default()
		if err != nil {
			return fmt.Errorf("load stimuli: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		}
		printStimuli(out, set)
		return nil
	},
}

func init() {
	stimuliCmd.Flags().Bool("json", false, "Print the sets as JSON")
}

func printStimuli(w io.Writer, set *stimuli.Set) {
	a := set.Attention
	fmt.Fprintln(w, "Attention")
	fmt.Fprintf(w, "  %-18s %s\n", "forward", strings.Join(a.Forward, "  "))
	fmt.Fprintf(w, "  %-18s %s\n", "backward", strings.Join(a.Backward, "  "))
	fmt.Fprintf(w, "  %-18s %s (target %s, neutral %s)\n", "symbols", strings.Join(a.Symbols, " "), a.Target, a.Neutral)

	l := set.Language
	fmt.Fprintln(w, "\nLanguage")
	for _, o := range l.Objects {
		fmt.Fprintf(w, "  %-18s %s\n", "object", o.Word)
	}
	for _, s := range l.Sentences {
		fmt.Fprintf(w, "  %-18s %s → %s\n", "sentence", s.Prompt, strings.Join(s.Answers, ", "))
	}
	fmt.Fprintf(w, "  %-18s %s\n", "fluency letter", l.FluencyLetter)

	p := set.ProblemSolving
	fmt.Fprintln(w, "\nProblem solving")
	for _, pat := range p.Patterns {
		fmt.Fprintf(w, "  %-18s %s\n", "pattern", joinInts(pat))
	}
	for _, s := range p.Sequences {
		fmt.Fprintf(w, "  %-18s %s → %d\n", "sequence", joinInts(s.Values), s.Next)
	}
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
