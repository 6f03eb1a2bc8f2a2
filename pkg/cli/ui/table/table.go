// Package table renders tabular CLI output.
package table

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arcops/arcctl/pkg/k8s"
)

const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
)

// WritePods renders pod summaries in kubectl-get-pods style columns.
func WritePods(writer io.Writer, pods []k8s.PodSummary) error {
	tabWriter := tabwriter.NewWriter(writer, tabMinWidth, tabWidth, tabPadding, ' ', 0)

	_, err := fmt.Fprintln(tabWriter, "NAME\tREADY\tSTATUS\tRESTARTS\tAGE")
	if err != nil {
		return fmt.Errorf("write pod table header: %w", err)
	}

	for _, pod := range pods {
		_, err = fmt.Fprintf(
			tabWriter,
			"%s\t%s\t%s\t%d\t%s\n",
			pod.Name,
			pod.Ready,
			pod.Phase,
			pod.Restarts,
			pod.Age.String(),
		)
		if err != nil {
			return fmt.Errorf("write pod table row: %w", err)
		}
	}

	err = tabWriter.Flush()
	if err != nil {
		return fmt.Errorf("flush pod table: %w", err)
	}

	return nil
}
