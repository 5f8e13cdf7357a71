package size

import "fmt"

// Format selects how Bytes.Display renders its scale prefix.
type Format int

const (
	// FormatPlain renders the raw integer with no scaling.
	FormatPlain Format = iota
	// FormatMetric scales by 1000 per prefix step (K, M, G, T, P).
	FormatMetric
	// FormatBinary scales by 1024 per prefix step (K, M, G, T, P).
	FormatBinary
)

// ParseFormat maps the CLI spelling of --bytes-format to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "plain":
		return FormatPlain, nil
	case "metric":
		return FormatMetric, nil
	case "binary":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("size: unknown bytes-format %q (want plain, metric or binary)", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatMetric:
		return "metric"
	case FormatBinary:
		return "binary"
	default:
		return "unknown"
	}
}

var metricPrefixes = [...]string{"K", "M", "G", "T", "P"}

func formatPlain(value uint64) string {
	return fmt.Sprintf("%d", value)
}

// formatBytes renders value under format. Plain is the bare integer, no
// unit. Metric and binary render the bare integer plus "B" below their
// base, and otherwise the largest scale whose divisor is at most value,
// rounded half-up to a whole-number coefficient with no decimal point.
func formatBytes(value uint64, format Format) string {
	switch format {
	case FormatPlain:
		return formatPlain(value)
	case FormatMetric:
		return formatScaled(value, 1000, metricPrefixes)
	case FormatBinary:
		return formatScaled(value, 1024, metricPrefixes)
	default:
		return formatPlain(value)
	}
}

func formatScaled(value, base uint64, prefixes [5]string) string {
	if value < base {
		return formatPlain(value) + "B"
	}
	divisor := uint64(1)
	prefix := ""
	for _, p := range prefixes {
		next := divisor * base
		if next > value {
			break
		}
		divisor = next
		prefix = p
	}
	whole := roundedDiv(value, divisor)
	return fmt.Sprintf("%d%s", whole, prefix)
}

// roundedDiv divides a by b and rounds half-up.
func roundedDiv(a, b uint64) uint64 {
	return (a + b/2) / b
}
