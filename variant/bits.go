package variant

import "github.com/Neumenon/variant/internal/rawbits"

// decode boxes the value held by (kind, raw, obj) into its Go type.
func decode(kind AnyType, raw uint64, obj any) any {
	switch kind {
	case TypeBoolean:
		return rawbits.Bool(raw)
	case TypeByte:
		return rawbits.Byte(raw)
	case TypeChar:
		return rawbits.Char(raw)
	case TypeShort:
		return rawbits.Short(raw)
	case TypeInt:
		return rawbits.Int(raw)
	case TypeLong:
		return rawbits.Long(raw)
	case TypeFloat:
		return rawbits.Float(raw)
	case TypeDouble:
		return rawbits.Double(raw)
	case TypeObject:
		return obj
	default:
		return nil
	}
}

// isSentinel reports whether v is a tag value. Tags are never payloads.
func isSentinel(v any) bool {
	switch v.(type) {
	case AnyType, *AnyType:
		return true
	}
	return false
}
