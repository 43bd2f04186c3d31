package main

import (
	"github.com/spf13/cobra"
)

func auditCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the audit log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.items.AuditLog(limit)
			if err != nil {
				return err
			}
			renderAudit(entries)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to show (default 500)")
	return cmd
}
