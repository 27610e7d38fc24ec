package clf

// Closed token sets used by attribute values across the CLF grammar.
// Unrecognised tokens are rejected with a DecodeError, never coerced.

// BitDepth is the declared precision and sample format of a process node's
// input or output values.
type BitDepth string

const (
	BitDepth8i  BitDepth = "8i"
	BitDepth10i BitDepth = "10i"
	BitDepth12i BitDepth = "12i"
	BitDepth16i BitDepth = "16i"
	BitDepth16f BitDepth = "16f"
	BitDepth32f BitDepth = "32f"
)

// ScaleFactor returns the factor that normalises a code value of this bit
// depth to the range 0..1. Float depths are already normalised.
func (b BitDepth) ScaleFactor() float64 {
	switch b {
	case BitDepth8i:
		return 1<<8 - 1
	case BitDepth10i:
		return 1<<10 - 1
	case BitDepth12i:
		return 1<<12 - 1
	case BitDepth16i:
		return 1<<16 - 1
	case BitDepth16f, BitDepth32f:
		return 1
	}

	return 0
}

// Float reports whether the bit depth is a floating point format.
func (b BitDepth) Float() bool {
	return b == BitDepth16f || b == BitDepth32f
}

// ParseBitDepth decodes a bit depth token such as "12i" or "16f".
func ParseBitDepth(token string) (BitDepth, error) {
	switch d := BitDepth(token); d {
	case BitDepth8i, BitDepth10i, BitDepth12i, BitDepth16i, BitDepth16f, BitDepth32f:
		return d, nil
	}

	return "", &DecodeError{Field: "bitDepth", Value: token, Reason: "not a valid bit depth token"}
}

// Interpolation1D is an interpolation method valid for LUT1D nodes.
type Interpolation1D string

const Interpolation1DLinear Interpolation1D = "linear"

// ParseInterpolation1D decodes a LUT1D interpolation token.
func ParseInterpolation1D(token string) (Interpolation1D, error) {
	if Interpolation1D(token) == Interpolation1DLinear {
		return Interpolation1DLinear, nil
	}

	return "", &DecodeError{Field: "interpolation", Value: token, Reason: "not a valid 1D interpolation"}
}

// Interpolation3D is an interpolation method valid for LUT3D nodes.
type Interpolation3D string

const (
	Interpolation3DTrilinear   Interpolation3D = "trilinear"
	Interpolation3DTetrahedral Interpolation3D = "tetrahedral"
)

// ParseInterpolation3D decodes a LUT3D interpolation token.
func ParseInterpolation3D(token string) (Interpolation3D, error) {
	switch i := Interpolation3D(token); i {
	case Interpolation3DTrilinear, Interpolation3DTetrahedral:
		return i, nil
	}

	return "", &DecodeError{Field: "interpolation", Value: token, Reason: "not a valid 3D interpolation"}
}

// RangeStyle selects the clamping behaviour of a Range node.
type RangeStyle string

const (
	RangeStyleClamp   RangeStyle = "Clamp"
	RangeStyleNoClamp RangeStyle = "noClamp"
)

// ParseRangeStyle decodes a Range style token.
func ParseRangeStyle(token string) (RangeStyle, error) {
	switch s := RangeStyle(token); s {
	case RangeStyleClamp, RangeStyleNoClamp:
		return s, nil
	}

	return "", &DecodeError{Field: "style", Value: token, Reason: "not a valid Range style"}
}

// LogStyle selects the curve of a Log node.
type LogStyle string

const (
	LogStyleLog10          LogStyle = "log10"
	LogStyleAntiLog10      LogStyle = "antiLog10"
	LogStyleLog2           LogStyle = "log2"
	LogStyleAntiLog2       LogStyle = "antiLog2"
	LogStyleLinToLog       LogStyle = "linToLog"
	LogStyleLogToLin       LogStyle = "logToLin"
	LogStyleCameraLinToLog LogStyle = "cameraLinToLog"
	LogStyleCameraLogToLin LogStyle = "cameraLogToLin"
)

// ParseLogStyle decodes a Log style token.
func ParseLogStyle(token string) (LogStyle, error) {
	switch s := LogStyle(token); s {
	case LogStyleLog10, LogStyleAntiLog10, LogStyleLog2, LogStyleAntiLog2,
		LogStyleLinToLog, LogStyleLogToLin, LogStyleCameraLinToLog, LogStyleCameraLogToLin:
		return s, nil
	}

	return "", &DecodeError{Field: "style", Value: token, Reason: "not a valid Log style"}
}

// ExponentStyle selects the curve of an Exponent node.
type ExponentStyle string

const (
	ExponentStyleBasicFwd          ExponentStyle = "basicFwd"
	ExponentStyleBasicRev          ExponentStyle = "basicRev"
	ExponentStyleBasicMirrorFwd    ExponentStyle = "basicMirrorFwd"
	ExponentStyleBasicMirrorRev    ExponentStyle = "basicMirrorRev"
	ExponentStyleBasicPassThruFwd  ExponentStyle = "basicPassThruFwd"
	ExponentStyleBasicPassThruRev  ExponentStyle = "basicPassThruRev"
	ExponentStyleMonCurveFwd       ExponentStyle = "monCurveFwd"
	ExponentStyleMonCurveRev       ExponentStyle = "monCurveRev"
	ExponentStyleMonCurveMirrorFwd ExponentStyle = "monCurveMirrorFwd"
	ExponentStyleMonCurveMirrorRev ExponentStyle = "monCurveMirrorRev"
)

// ParseExponentStyle decodes an Exponent style token.
func ParseExponentStyle(token string) (ExponentStyle, error) {
	switch s := ExponentStyle(token); s {
	case ExponentStyleBasicFwd, ExponentStyleBasicRev,
		ExponentStyleBasicMirrorFwd, ExponentStyleBasicMirrorRev,
		ExponentStyleBasicPassThruFwd, ExponentStyleBasicPassThruRev,
		ExponentStyleMonCurveFwd, ExponentStyleMonCurveRev,
		ExponentStyleMonCurveMirrorFwd, ExponentStyleMonCurveMirrorRev:
		return s, nil
	}

	return "", &DecodeError{Field: "style", Value: token, Reason: "not a valid Exponent style"}
}

// CDLStyle selects the direction and clamping of an ASC_CDL node.
type CDLStyle string

const (
	CDLStyleFwd        CDLStyle = "Fwd"
	CDLStyleRev        CDLStyle = "Rev"
	CDLStyleFwdNoClamp CDLStyle = "FwdNoClamp"
	CDLStyleRevNoClamp CDLStyle = "RevNoClamp"
)

// ParseCDLStyle decodes an ASC_CDL style token.
func ParseCDLStyle(token string) (CDLStyle, error) {
	switch s := CDLStyle(token); s {
	case CDLStyleFwd, CDLStyleRev, CDLStyleFwdNoClamp, CDLStyleRevNoClamp:
		return s, nil
	}

	return "", &DecodeError{Field: "style", Value: token, Reason: "not a valid ASC_CDL style"}
}

// Channel restricts a Range, Log or Exponent parameter set to one colour
// channel.
type Channel string

const (
	ChannelR Channel = "R"
	ChannelG Channel = "G"
	ChannelB Channel = "B"
)

// ParseChannel decodes a channel token.
func ParseChannel(token string) (Channel, error) {
	switch c := Channel(token); c {
	case ChannelR, ChannelG, ChannelB:
		return c, nil
	}

	return "", &DecodeError{Field: "channel", Value: token, Reason: "not a valid channel"}
}
