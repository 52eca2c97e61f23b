// Copyright 2026 Slidewise Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "strings"

// TableText canonicalizes a table element into plain text suitable for
// summarization. It is a pure function: identical input always produces
// byte-identical output.
//
// Row 0 is treated as the header row when it contains at least one
// non-blank cell; data cells are then rendered as "<header>: <value>"
// where a non-blank header exists for the column, and as the bare value
// otherwise. Cells in a row are joined with " | ", rows with newlines,
// and the optional display name is prefixed on its own line.
//
// The declared Rows/Cols dimensions are never trusted: iteration is
// bounded to the actual grid so sparse or malformed tables cannot cause
// out-of-range access. A table with no cells yields the empty string;
// callers must skip it rather than request a summary.
func TableText(t *Element) string {
	if len(t.Cells) == 0 {
		return ""
	}

	rowBound := min(t.Rows, len(t.Cells))
	headers := headerRow(t)

	var lines []string
	if name := strings.TrimSpace(t.Name); name != "" {
		lines = append(lines, name)
	}

	for r := 1; r < rowBound; r++ {
		row := t.Cells[r]
		colBound := min(t.Cols, len(row))

		var rendered []string
		for c := 0; c < colBound; c++ {
			value := row[c].Text()
			if value == "" {
				continue
			}
			if c < len(headers) && headers[c] != "" {
				rendered = append(rendered, headers[c]+": "+value)
			} else {
				rendered = append(rendered, value)
			}
		}
		if len(rendered) > 0 {
			lines = append(lines, strings.Join(rendered, " | "))
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// headerRow extracts the header texts from row 0, bounded to the
// declared column count. Returns nil when every cell in the row is
// blank, which disables header-qualification for the whole table.
func headerRow(t *Element) []string {
	row := t.Cells[0]
	colBound := min(t.Cols, len(row))

	headers := make([]string, colBound)
	usable := false
	for c := 0; c < colBound; c++ {
		headers[c] = row[c].Text()
		if headers[c] != "" {
			usable = true
		}
	}
	if !usable {
		return nil
	}
	return headers
}
