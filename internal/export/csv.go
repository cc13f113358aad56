// internal/export/csv.go
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/NathanMoore4472/modscan-tool/internal/decode"
)

// Header is the column set, matching the scan table.
var Header = []string{
	"Address", "Tag Name", "Hex", "Binary",
	"Uint16", "Int16", "Uint32", "Int32", "Float32", "String",
}

// WriteCSV writes the decoded snapshot as flat CSV: one header line,
// one line per row, bit sub-rows directly after their register row.
// Fields are comma-joined with no quoting or escaping of embedded
// commas, so a tag name containing a comma will shift columns.
func WriteCSV(w io.Writer, rows []decode.Row, expandBits bool) error {
	if _, err := fmt.Fprintln(w, strings.Join(Header, ",")); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(RegisterFields(row), ",")); err != nil {
			return err
		}
		if !expandBits || row.Err != nil || row.IsBit {
			continue
		}
		for _, bit := range row.Bits {
			if _, err := fmt.Fprintln(w, strings.Join(BitFields(row, bit), ",")); err != nil {
				return err
			}
		}
	}

	return nil
}

// Filename names an export after the moment it was taken.
func Filename(now time.Time) string {
	return "modbus_registers_" + now.Format("20060102_150405") + ".csv"
}

// RegisterFields renders one top-level row into its column values.
func RegisterFields(row decode.Row) []string {
	if row.Err != nil {
		return []string{
			fmt.Sprintf("%d", row.Address), "ERROR", "ERROR", "ERROR",
			"ERROR", "ERROR", "ERROR", "ERROR", "ERROR", "ERROR",
		}
	}

	if row.IsBit {
		v := "0"
		if row.BitValue {
			v = "1"
		}
		return []string{
			fmt.Sprintf("%d", row.Address), row.Tag, v, "-",
			"-", "-", "-", "-", "-", "-",
		}
	}

	u32, s32, f32 := dwordFields(row.Dword)
	return []string{
		fmt.Sprintf("%d", row.Address),
		row.Tag,
		row.Word.Hex,
		row.Word.Binary,
		fmt.Sprintf("%d", row.Word.Unsigned),
		fmt.Sprintf("%d", row.Word.Signed),
		u32,
		s32,
		f32,
		row.Word.ASCII,
	}
}

// BitFields renders one bit sub-row. The full register binary and hex
// are repeated for context, as in the table view.
func BitFields(row decode.Row, bit decode.BitView) []string {
	v := "0"
	if bit.Value {
		v = "1"
	}
	return []string{
		fmt.Sprintf("%d.%d", row.Address, bit.Display),
		bit.Tag,
		v,
		row.Word.Binary,
		row.Word.Hex,
		"-", "-", "-", "-", "-",
	}
}

func dwordFields(d decode.Dword) (u32, s32, f32 string) {
	if !d.OK {
		return "-", "-", "-"
	}
	u32 = fmt.Sprintf("%d", d.Unsigned)
	s32 = fmt.Sprintf("%d", d.Signed)
	if d.FloatOK {
		f32 = fmt.Sprintf("%.6f", d.Float)
	} else {
		f32 = "N/A"
	}
	return u32, s32, f32
}
