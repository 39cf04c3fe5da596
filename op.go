package pixelpipe

import "fmt"

// OpKind identifies one of the engine's filter operations. The set is
// closed: Pipeline dispatches over it with a single exhaustive switch,
// and new kinds are added at compile time only.
type OpKind uint8

// Filter operation kinds.
const (
	KindGrayscale OpKind = iota
	KindBrightness
	KindContrast
	KindBlur
	KindSharpen
	KindEdgeDetect
	KindResize
	KindInvert
	KindSepia
)

// String returns the canonical name of the operation kind. These names
// are also the "type" values accepted by ParseOps.
func (k OpKind) String() string {
	switch k {
	case KindGrayscale:
		return "grayscale"
	case KindBrightness:
		return "brightness"
	case KindContrast:
		return "contrast"
	case KindBlur:
		return "blur"
	case KindSharpen:
		return "sharpen"
	case KindEdgeDetect:
		return "edge_detect"
	case KindResize:
		return "resize"
	case KindInvert:
		return "invert"
	case KindSepia:
		return "sepia"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Op is a tagged, immutable filter operation with its parameters. Ops
// carry data only; behavior is looked up by Kind inside the Pipeline.
//
// Parameter fields are meaningful per kind:
//   - KindBrightness: Value in [-1, 1] nominal (not enforced)
//   - KindContrast: Value >= 0 nominal
//   - KindBlur: Value is sigma, must be > 0
//   - KindResize: Width and Height, must be > 0
//
// Other kinds take no parameters.
type Op struct {
	Kind   OpKind
	Value  float32
	Width  int
	Height int
}

// String formats the operation with its parameters for logs and errors.
func (op Op) String() string {
	switch op.Kind {
	case KindBrightness, KindContrast:
		return fmt.Sprintf("%s(%g)", op.Kind, op.Value)
	case KindBlur:
		return fmt.Sprintf("blur(sigma=%g)", op.Value)
	case KindResize:
		return fmt.Sprintf("resize(%dx%d)", op.Width, op.Height)
	default:
		return op.Kind.String()
	}
}

// GrayscaleOp returns a grayscale conversion operation.
func GrayscaleOp() Op { return Op{Kind: KindGrayscale} }

// BrightnessOp returns a brightness adjustment operation.
// amount is nominally in [-1, 1]; 0 is the identity.
func BrightnessOp(amount float32) Op {
	return Op{Kind: KindBrightness, Value: amount}
}

// ContrastOp returns a contrast adjustment operation.
// factor is nominally >= 0; 1 is the identity.
func ContrastOp(factor float32) Op {
	return Op{Kind: KindContrast, Value: factor}
}

// BlurOp returns a Gaussian blur operation with the given sigma.
// Execution fails with ErrInvalidParameter unless sigma > 0.
func BlurOp(sigma float32) Op {
	return Op{Kind: KindBlur, Value: sigma}
}

// SharpenOp returns an unsharp-mask sharpening operation.
func SharpenOp() Op { return Op{Kind: KindSharpen} }

// EdgeDetectOp returns a Sobel edge-detection operation.
func EdgeDetectOp() Op { return Op{Kind: KindEdgeDetect} }

// ResizeOp returns a Lanczos resize operation to width x height.
// Execution fails with ErrInvalidDimensions unless both are > 0.
func ResizeOp(width, height int) Op {
	return Op{Kind: KindResize, Width: width, Height: height}
}

// InvertOp returns a color inversion operation.
func InvertOp() Op { return Op{Kind: KindInvert} }

// SepiaOp returns a sepia toning operation.
func SepiaOp() Op { return Op{Kind: KindSepia} }
