package pixelpipe

import (
	"encoding/json"
	"fmt"
)

// opSpec is the wire form of one operation in a textual filter list.
type opSpec struct {
	Type   string   `json:"type"`
	Value  *float32 `json:"value,omitempty"`
	Sigma  *float32 `json:"sigma,omitempty"`
	Width  *int     `json:"width,omitempty"`
	Height *int     `json:"height,omitempty"`
}

// ParseOps translates a textual operation list into an ordered Op slice.
// The input is a JSON array of objects:
//
//	[{"type": "grayscale"},
//	 {"type": "brightness", "value": 0.2},
//	 {"type": "blur", "sigma": 1.5},
//	 {"type": "resize", "width": 640, "height": 480}]
//
// Blur accepts either "sigma" or "value" for its parameter. Operation
// order is preserved.
//
// Unrecognized operation names, and parameterized operations missing
// their required parameter, are silently dropped rather than rejected.
// Embedding hosts depend on this; a warning is logged so the drops are
// at least visible when logging is enabled.
//
// Malformed JSON is an error; an empty array parses to an empty list.
func ParseOps(data []byte) ([]Op, error) {
	var specs []opSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("pixelpipe: parse operation list: %w", err)
	}

	ops := make([]Op, 0, len(specs))
	for _, s := range specs {
		op, ok := s.toOp()
		if !ok {
			Logger().Warn("dropping unrecognized operation", "type", s.Type)
			continue
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// toOp converts a wire spec to an Op. ok is false when the name is
// unknown or a required parameter is absent.
func (s opSpec) toOp() (Op, bool) {
	switch s.Type {
	case "grayscale":
		return GrayscaleOp(), true
	case "invert":
		return InvertOp(), true
	case "sepia":
		return SepiaOp(), true
	case "sharpen":
		return SharpenOp(), true
	case "edge_detect":
		return EdgeDetectOp(), true
	case "brightness":
		if s.Value == nil {
			return Op{}, false
		}
		return BrightnessOp(*s.Value), true
	case "contrast":
		if s.Value == nil {
			return Op{}, false
		}
		return ContrastOp(*s.Value), true
	case "blur":
		switch {
		case s.Sigma != nil:
			return BlurOp(*s.Sigma), true
		case s.Value != nil:
			return BlurOp(*s.Value), true
		default:
			return Op{}, false
		}
	case "resize":
		if s.Width == nil || s.Height == nil {
			return Op{}, false
		}
		return ResizeOp(*s.Width, *s.Height), true
	default:
		return Op{}, false
	}
}
