// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v2"

	"github.com/staranto/datactx/internal/config"
	"github.com/staranto/datactx/internal/record"
)

// Formats accepted by Emit.
var Formats = []string{"text", "json", "yaml"}

// Options controls how a record set is rendered.
type Options struct {
	Format string
	Titles bool
	Color  bool
}

// Emit renders records to w. attrs selects and orders the columns for text
// output and the fields kept for json/yaml; when empty every field is used.
func Emit(w io.Writer, records []record.Record, attrs []string, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	cols := Columns(records, attrs)
	rows := project(records, attrs)

	switch opts.Format {
	case "json":
		jsonOutput, err := json.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	default:
		TableWriter(w, rows, cols, opts)
		return nil
	}
}

// Columns returns attrs if given, otherwise the sorted union of the fields
// across records.
func Columns(records []record.Record, attrs []string) []string {
	if len(attrs) > 0 {
		return attrs
	}

	seen := make(map[string]struct{})
	for _, r := range records {
		for k := range r {
			seen[k] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// project narrows each record to attrs. Absent fields stay absent. The input
// records are never modified.
func project(records []record.Record, attrs []string) []record.Record {
	rows := make([]record.Record, 0, len(records))
	for _, r := range records {
		if len(attrs) == 0 {
			rows = append(rows, r)
			continue
		}
		row := make(record.Record, len(attrs))
		for _, a := range attrs {
			if r.Has(a) {
				row[a] = r[a]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options.
func TableWriter(w io.Writer, resultSet []record.Record, cols []string, opts Options) {
	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)
	log.Debugf("padding: %v", pad)

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(cols))
		for _, c := range cols {
			row = append(row, InterfaceToString(result.Field(c), "-"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(cols...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts supported primitive or composite values to a
// string. nil and record.Missing render as emptyValue ("" by default).
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || record.IsMissing(value) {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
