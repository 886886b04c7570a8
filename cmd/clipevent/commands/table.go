package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/clipevent/internal/clip"
)

func newTableCmd() *cobra.Command {
	var delivery string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print how every clip event kind is delivered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds, err := filterKinds(delivery)
			if err != nil {
				return err
			}
			return printKinds(cmd.OutOrStdout(), kinds)
		},
	}
	cmd.Flags().StringVar(&delivery, "delivery", "", "only list kinds with this delivery (broadcast, anycast, targeted)")
	return cmd
}

func filterKinds(delivery string) ([]clip.Kind, error) {
	all := clip.AllKinds()
	if delivery == "" {
		return all, nil
	}

	var out []clip.Kind
	for _, k := range all {
		if strings.EqualFold(k.Delivery().String(), delivery) {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("unknown delivery %q", delivery)
	}
	return out, nil
}

func printKinds(w io.Writer, kinds []clip.Kind) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tDELIVERY\tSWF FLAG\tMETHOD\tBUTTON\tKEY\tPROPAGATES")
	for _, k := range kinds {
		flag := "-"
		if f, ok := k.Flag(); ok {
			flag = f.String()
		}
		method := "-"
		if m, ok := k.MethodName(); ok {
			method = m
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			k, k.Delivery(), flag, method,
			yesNo(k.IsButtonEvent()), yesNo(k.IsKeyEvent()), yesNo(k.Propagates()))
	}
	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
