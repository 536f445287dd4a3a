package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/owlbench/internal/catalog"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Profile string
}

// queryInfo is the JSON shape of one listed query.
type queryInfo struct {
	Name        string `json:"name"`
	Arity       int    `json:"arity"`
	Construct   string `json:"construct"`
	Profiles    string `json:"profiles"`
	Description string `json:"description"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the query catalog",
		Long: `List every query in the battery with its arity, the OWL 2 construct it
probes, and the profiles the construct belongs to.

Example:
  owlbench list
  owlbench list --profile RL`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listQueries(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "only queries tagged with this profile (EL|QL|RL|DL)")
	return cmd
}

func listQueries(cmd *cobra.Command, opts *ListOptions) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	var infos []queryInfo
	for _, q := range catalog.New().All() {
		if opts.Profile != "" && !q.InProfile(catalog.Profile(opts.Profile)) {
			continue
		}
		infos = append(infos, queryInfo{
			Name:        q.Name,
			Arity:       q.Arity,
			Construct:   q.Construct,
			Profiles:    profileString(q.Profiles),
			Description: q.Description,
		})
	}
	if len(infos) == 0 {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("no queries tagged with profile %q", opts.Profile))
	}

	return out.Success(infos, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tARITY\tCONSTRUCT\tPROFILES")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
				info.Name, info.Arity, info.Construct, info.Profiles)
		}
		return tw.Flush()
	})
}

func profileString(ps []catalog.Profile) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, " ")
}
