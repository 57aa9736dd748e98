package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"apinotes/internal/override"
)

var encodeFormat string

func init() {
	encodeCmd.Flags().StringVar(&encodeFormat, "format", "pretty", "output format (pretty|json)")
}

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] kind...",
	Short: "Pack nullability kinds into a payload word",
	Long: `Encode packs the given kinds (nonnull|nullable|unknown) into a payload word.
The first kind describes the return type, the rest describe the parameters in
order. At most 32 kinds fit in one word.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

type encodedPayload struct {
	Payload string `json:"payload"`
	Slots   uint8  `json:"slots"`
}

func runEncode(cmd *cobra.Command, args []string) error {
	count, err := slotCount(len(args))
	if err != nil {
		return err
	}

	method := override.MethodOverride{NullabilityAudited: true}
	for i, arg := range args {
		kind, err := parseKindName(arg)
		if err != nil {
			return err
		}
		method.RecordSlotNullability(uint(i), kind)
	}
	method.AdjustedSlotCount = count

	out := encodedPayload{
		Payload: fmt.Sprintf("0x%016x", uint64(method.Payload)),
		Slots:   method.AdjustedSlotCount,
	}
	switch encodeFormat {
	case "pretty":
		fmt.Fprintf(cmd.OutOrStdout(), "payload: %s\nslots:   %d\n", out.Payload, out.Slots)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", encodeFormat)
	}
}

func parseKindName(s string) (override.NullableKind, error) {
	switch strings.ToLower(s) {
	case "nonnull", "nonnullable":
		return override.NonNullable, nil
	case "nullable":
		return override.Nullable, nil
	case "unknown":
		return override.Unknown, nil
	default:
		return 0, fmt.Errorf("unknown nullability kind %q (must be nonnull, nullable, or unknown)", s)
	}
}
