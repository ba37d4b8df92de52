// Package query provides read-only structural queries over markup
// documents: enclosing tags, rename ranges, completion candidates and
// wrap targets.
package query

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewCmdQuery creates the query command.
func NewCmdQuery() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Inspect markup around a position",
		Long: `Answer structural questions about a markup document: which tag
encloses a position, where its name can be renamed, which attributes or
values can be completed, and what span a wrap would enclose.

The document is read from stdin or from a file; positions are byte
offsets.`,
	}

	cmd.AddCommand(NewCmdTag())
	cmd.AddCommand(NewCmdRename())
	cmd.AddCommand(NewCmdAttrs())
	cmd.AddCommand(NewCmdValues())
	cmd.AddCommand(NewCmdTarget())

	return cmd
}

// docOptions carries the flags shared by every query subcommand.
type docOptions struct {
	file string
	at   int

	output  string
	noColor bool
	in      io.Reader // test override
	out     io.Writer // test override
}

func addDocFlags(cmd *cobra.Command, opts *docOptions) {
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the document from a file instead of stdin")
	cmd.Flags().IntVar(&opts.at, "at", 0, "Byte offset of the query position")
}

func (o *docOptions) fromCommand(cmd *cobra.Command) {
	o.output, _ = cmd.Flags().GetString("output")
	o.noColor, _ = cmd.Flags().GetBool("no-color")
}

func (o *docOptions) readDocument() (string, error) {
	if o.file != "" {
		data, err := os.ReadFile(o.file)
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return string(data), nil
	}

	in := o.in
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no document to query (pipe one in or use --file)")
	}
	return string(data), nil
}
