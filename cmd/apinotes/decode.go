package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"apinotes/internal/override"
)

var (
	decodeSlots  int
	decodeFormat string
)

func init() {
	decodeCmd.Flags().IntVar(&decodeSlots, "slots", override.MaxNullabilitySlots,
		"number of recorded slots (return + parameters)")
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "pretty", "output format (pretty|json)")
}

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] payload",
	Short: "Decode a packed nullability payload word",
	Long: `Decode prints the per-slot nullability packed into a 64-bit payload word
(decimal or 0x-prefixed hex). Slot 0 is the return type; slot i+1 is parameter i.
Slots at or beyond --slots read as nonnull, matching how consumers treat them.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

type slotRow struct {
	Slot int                   `json:"slot"`
	Role string                `json:"role"`
	Kind override.NullableKind `json:"-"`
	Name string                `json:"kind"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	payload, err := parsePayloadWord(args[0])
	if err != nil {
		return err
	}
	count, err := slotCount(decodeSlots)
	if err != nil {
		return err
	}

	method := override.MethodOverride{
		NullabilityAudited: true,
		AdjustedSlotCount:  count,
		Payload:            payload,
	}
	rows := make([]slotRow, 0, count)
	for slot := 0; slot < int(count); slot++ {
		row := slotRow{Slot: slot, Role: "return"}
		if slot == 0 {
			row.Kind = method.ReturnTypeInfo()
		} else {
			row.Role = fmt.Sprintf("param %d", slot-1)
			row.Kind = method.ParamTypeInfo(uint(slot - 1))
		}
		row.Name = row.Kind.String()
		rows = append(rows, row)
	}

	switch decodeFormat {
	case "pretty":
		out := cmd.OutOrStdout()
		renderSlotsPretty(out, rows, useColor(cmd, out))
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", decodeFormat)
	}
}

func renderSlotsPretty(out io.Writer, rows []slotRow, colorize bool) {
	for _, row := range rows {
		fmt.Fprintf(out, "slot %2d  %-8s  %s\n", row.Slot, row.Role, kindLabel(row.Kind, colorize))
	}
}

func kindLabel(kind override.NullableKind, colorize bool) string {
	if !colorize {
		return kind.String()
	}
	switch kind {
	case override.NonNullable:
		return color.New(color.FgGreen).Sprint(kind.String())
	case override.Nullable:
		return color.New(color.FgYellow).Sprint(kind.String())
	default:
		return color.New(color.FgHiBlack).Sprint(kind.String())
	}
}

func parsePayloadWord(s string) (override.NullabilityPayload, error) {
	word, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid payload word %q: %w", s, err)
	}
	return override.NullabilityPayload(word), nil
}

func slotCount(n int) (uint8, error) {
	if n > override.MaxNullabilitySlots {
		return 0, fmt.Errorf("cannot address %d slots: the payload holds at most %d",
			n, override.MaxNullabilitySlots)
	}
	count, err := safecast.Conv[uint8](n)
	if err != nil {
		return 0, fmt.Errorf("invalid slot count %d: %w", n, err)
	}
	return count, nil
}
