package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/spf13/cobra"
)

// report prints the pending notice of client and maps err to the command
// result.
func (c *commands) report(cmd *cobra.Command, client service.SessionClient, err error) error {
	n, shown := client.Notices().Take()
	if shown {
		if n.IsError() {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", n.Message)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), n.Message)
		}
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrCloseNotConfirmed):
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	case errors.Is(err, service.ErrNotAuthenticated):
		return ErrNotLoggedIn
	case errors.Is(err, context.Canceled):
		return err
	case shown && n.IsError():
		return reportedError{err: err}
	default:
		return err
	}
}

type sessionsOutput struct {
	Sessions  []sessionOutput `json:"sessions"`
	PageIndex int             `json:"page_index"`
	PageSize  int             `json:"page_size"`
	Total     int             `json:"total"`
}

type sessionOutput struct {
	ID         int64  `json:"id"`
	Category   string `json:"category"`
	GPUVersion string `json:"gpu_version"`
	URL        string `json:"url"`
	Status     string `json:"status"`
	StartedAt  string `json:"started_at"`
	UpdatedAt  string `json:"updated_at"`
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeSessions(w io.Writer, format string, s models.Snapshot) error {
	if format == "json" {
		out := sessionsOutput{
			Sessions:  make([]sessionOutput, 0, len(s.Sessions)),
			PageIndex: s.Pagination.PageIndex,
			PageSize:  s.Pagination.PageSize,
			Total:     s.Pagination.Total,
		}
		for _, sess := range s.Sessions {
			out.Sessions = append(out.Sessions, sessionOutput{
				ID:         sess.ID,
				Category:   sess.Category,
				GPUVersion: sess.GPUVersion,
				URL:        sess.URL,
				Status:     sess.Status.String(),
				StartedAt:  sess.StartedAt,
				UpdatedAt:  sess.UpdatedAt,
			})
		}
		return writeJSON(w, out)
	}

	if len(s.Sessions) == 0 {
		fmt.Fprintln(w, "No active sessions.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tGPU\tURL\tSTATUS\tSTARTED\tUPDATED")
	fmt.Fprintln(tw, "--\t--------\t---\t---\t------\t-------\t-------")
	for _, sess := range s.Sessions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.FormatInt(sess.ID, 10),
			service.DisplayValue(sess.Category),
			service.DisplayValue(sess.GPUVersion),
			service.DisplayValue(sess.URL),
			service.DisplayValue(sess.Status.String()),
			service.DisplayValue(sess.StartedAt),
			service.DisplayValue(sess.UpdatedAt),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	p := s.Pagination
	if p.Total > 0 {
		fmt.Fprintf(w, "\npage %d/%d · size %d · total %d\n", p.PageIndex, p.PageCount(), p.PageSize, p.Total)
	}
	return nil
}
