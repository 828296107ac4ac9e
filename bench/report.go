package bench

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"
	"github.com/olekukonko/tablewriter"
)

// Result is the summary for one subject and operation.
type Result struct {
	Subject   string    `json:"subject"`
	Operation Operation `json:"operation"`
	Stats
}

// Report is the outcome of a Runner.
type Report struct {
	Config   Config        `json:"config"`
	Started  time.Time     `json:"started"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	TotalOps uint64        `json:"total_ops"`
	Chains   ChainStats    `json:"chains"`
	Results  []Result      `json:"results"`
}

// Find returns the result for subject and op.
func (r *Report) Find(subject string, op Operation) (Result, bool) {
	for _, res := range r.Results {
		if res.Subject == subject && res.Operation == op {
			return res, true
		}
	}
	return Result{}, false
}

// Ratio returns how many times slower subject was than the baseline map on
// op, by mean time per operation.
func (r *Report) Ratio(subject string, op Operation) (float64, bool) {
	res, ok := r.Find(subject, op)
	if !ok {
		return 0, false
	}
	base, ok := r.Find(BaselineSubject, op)
	if !ok || base.Mean == 0 {
		return 0, false
	}
	return res.Mean / base.Mean, true
}

// WriteText prints the report as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "capacity %s, keys %s, %d rounds (+%d warmup), %s ops in %s\n",
		humanize.Comma(int64(r.Config.Capacity)),
		humanize.Comma(int64(r.Config.KeyCount())),
		r.Config.Rounds, r.Config.Warmup,
		humanize.Comma(int64(r.TotalOps)),
		r.Elapsed.Round(time.Millisecond),
	)
	fmt.Fprintf(w, "chains: load factor %.2f, longest %d, empty slots %s of %s\n\n",
		r.Chains.LoadFactor, r.Chains.Longest,
		humanize.Comma(int64(r.Chains.Empty)), humanize.Comma(int64(r.Chains.Slots)),
	)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"op", "container", "mean ns/op", "median", "min", "max", "stddev",
		"bytes/batch", "allocs/batch", "vs map",
	})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, res := range r.Results {
		ratio := "-"
		if res.Subject != BaselineSubject {
			if x, ok := r.Ratio(res.Subject, res.Operation); ok {
				ratio = fmt.Sprintf("%.2fx", x)
			}
		}

		table.Append([]string{
			string(res.Operation), res.Subject,
			fmt.Sprintf("%.1f", res.Mean),
			fmt.Sprintf("%.1f", res.Median),
			fmt.Sprintf("%.1f", res.Min),
			fmt.Sprintf("%.1f", res.Max),
			fmt.Sprintf("%.1f", res.StdDev),
			humanize.IBytes(uint64(res.Bytes)),
			humanize.Comma(int64(res.Allocs)),
			ratio,
		})
	}

	table.Render()

	return nil
}

// WriteJSON writes the report to path, replacing any existing file
// atomically.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", errReportWrite, err)
	}

	data = append(data, '\n')

	err = atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w %s: %w", errReportWrite, path, err)
	}

	return nil
}

// ReadReport loads a report written by WriteJSON.
func ReadReport(data []byte) (*Report, error) {
	var r Report

	err := json.Unmarshal(data, &r)
	if err != nil {
		return nil, fmt.Errorf("invalid report: %w", err)
	}

	return &r, nil
}
