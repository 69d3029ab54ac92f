package main

import (
	"fmt"
	"strconv"

	"github.com/danmuck/pngctl/internal/payload"
	"github.com/danmuck/pngctl/internal/stash"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		output   string
		compress bool
	)
	cmd := &cobra.Command{
		Use:   "encode <png> <chunk-type> <message>",
		Short: "Encode a message into a PNG file and save the result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(func(cfg *stash.ServiceConfig) {
				if cmd.Flags().Changed("compress") {
					cfg.Compress = compress
				}
			})
			if err != nil {
				return err
			}
			defer svc.Close()

			written, err := svc.EncodeFile(args[0], args[1], args[2], output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "message hidden in %s chunk, written to %s\n", args[1], written)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default from config, result.png)")
	cmd.Flags().BoolVar(&compress, "compress", false, "compress the message with zstd")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "decode <png> <chunk-type>",
		Short: "Print the message hidden in a PNG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(nil)
			if err != nil {
				return err
			}
			defer svc.Close()

			f := svc.Config().Format
			if cmd.Flags().Changed("format") {
				if f, err = payload.ParseFormat(format); err != nil {
					return err
				}
			}

			msg, err := svc.DecodeFile(args[0], args[1], f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, hex or base58 (default from config, text)")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "remove <png> <chunk-type>",
		Short: "Remove a chunk from a PNG file and save the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(nil)
			if err != nil {
				return err
			}
			defer svc.Close()

			written, removed, err := svc.RemoveFile(args[0], args[1], output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s chunk (%d bytes), written to %s\n", removed.Type(), removed.Length(), written)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default from config, result.png)")
	return cmd
}

func newPrintCmd(a *app) *cobra.Command {
	var table bool
	cmd := &cobra.Command{
		Use:   "print <png>",
		Short: "Print all of the chunks in a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(nil)
			if err != nil {
				return err
			}
			defer svc.Close()

			p, err := svc.LoadFile(args[0])
			if err != nil {
				return err
			}
			if table {
				printChunkTable(cmd, stash.Summarize(p))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), p.String())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&table, "table", "t", false, "print chunk details as a table")
	return cmd
}

func printChunkTable(cmd *cobra.Command, rows []stash.ChunkSummary) {
	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"#", "Type", "Length", "CRC", "Critical", "Public", "Reserved", "Safe-to-copy"})
	out.SetAutoWrapText(false)

	for _, r := range rows {
		out.Append([]string{
			strconv.Itoa(r.Index),
			r.Type,
			strconv.FormatUint(uint64(r.Length), 10),
			fmt.Sprintf("%08x", r.CRC),
			boolToString(r.Critical),
			boolToString(r.Public),
			boolToString(r.ReservedOK),
			boolToString(r.SafeToCopy),
		})
	}

	out.Render()
}

func boolToString(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
