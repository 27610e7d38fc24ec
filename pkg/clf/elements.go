package clf

import (
	"github.com/pkg/errors"

	"github.com/colour-pipeline/go-clf/internal/xmltree"
)

// Info is the optional, non-normative metadata block of a ProcessList. Every
// field is independently optional and unknown children are ignored.
type Info struct {
	AppRelease      string
	Copyright       string
	Revision        string
	ACESTransformID string
	ACESUserName    string
	Calibration     *CalibrationInfo
}

// CalibrationInfo describes the display calibration session a transform was
// produced by.
type CalibrationInfo struct {
	DisplayDeviceSerialNum     string
	DisplayDeviceHostName      string
	OperatorName               string
	CalibrationDateTime        string
	MeasurementProbe           string
	CalibrationSoftwareName    string
	CalibrationSoftwareVersion string
}

func parseInfo(e *xmltree.Element) (*Info, error) {
	if e == nil {
		return nil, nil
	}

	info := &Info{}
	info.AppRelease, _ = e.Attr("AppRelease")
	info.Copyright, _ = e.Attr("Copyright")
	info.Revision, _ = e.Attr("Revision")
	info.ACESTransformID, _ = e.Attr("ACEStransformID")
	info.ACESUserName, _ = e.Attr("ACESuserName")

	cal, err := singleChild(e, "CalibrationInfo")
	if err != nil {
		return nil, err
	}

	if cal != nil {
		ci := &CalibrationInfo{}
		ci.DisplayDeviceSerialNum, _ = cal.Attr("DisplayDeviceSerialNum")
		ci.DisplayDeviceHostName, _ = cal.Attr("DisplayDeviceHostName")
		ci.OperatorName, _ = cal.Attr("OperatorName")
		ci.CalibrationDateTime, _ = cal.Attr("CalibrationDateTime")
		ci.MeasurementProbe, _ = cal.Attr("MeasurementProbe")
		ci.CalibrationSoftwareName, _ = cal.Attr("CalibrationSoftwareName")
		ci.CalibrationSoftwareVersion, _ = cal.Attr("CalibrationSoftwareVersion")
		info.Calibration = ci
	}

	return info, nil
}

// SOPNode holds the slope, offset and power triples of an ASC_CDL node.
type SOPNode struct {
	Slope  [3]float64
	Offset [3]float64
	Power  [3]float64
}

func parseSOPNode(e *xmltree.Element) (*SOPNode, error) {
	if e == nil {
		return nil, nil
	}

	sop := &SOPNode{}

	for _, part := range []struct {
		name string
		dst  *[3]float64
	}{
		{"Slope", &sop.Slope},
		{"Offset", &sop.Offset},
		{"Power", &sop.Power},
	} {
		text, err := childText(e, part.name)
		if err != nil {
			return nil, err
		}

		if text == "" {
			return nil, missingField(part.name)
		}

		*part.dst, err = parseThreeFloats(part.name, text)
		if err != nil {
			return nil, err
		}
	}

	return sop, nil
}

// SatNode holds the saturation of an ASC_CDL node.
type SatNode struct {
	Saturation float64
}

func parseSatNode(e *xmltree.Element) (*SatNode, error) {
	if e == nil {
		return nil, nil
	}

	text, err := childText(e, "Saturation")
	if err != nil {
		return nil, err
	}

	if text == "" {
		return nil, missingField("Saturation")
	}

	sat, err := parseFloat("Saturation", text)
	if err != nil {
		return nil, err
	}

	return &SatNode{Saturation: sat}, nil
}

// LogParams carries the optional curve parameters of a Log node. Nil fields
// were absent from the document; the execution engine applies the defaults
// of the selected style.
type LogParams struct {
	Base          *float64
	LogSideSlope  *float64
	LogSideOffset *float64
	LinSideSlope  *float64
	LinSideOffset *float64
	LinSideBreak  *float64
	LinearSlope   *float64
	Channel       Channel
}

func parseLogParams(e *xmltree.Element) (*LogParams, error) {
	if e == nil {
		return nil, nil
	}

	params := &LogParams{}

	for _, attr := range []struct {
		name string
		dst  **float64
	}{
		{"base", &params.Base},
		{"logSideSlope", &params.LogSideSlope},
		{"logSideOffset", &params.LogSideOffset},
		{"linSideSlope", &params.LinSideSlope},
		{"linSideOffset", &params.LinSideOffset},
		{"linSideBreak", &params.LinSideBreak},
		{"linearSlope", &params.LinearSlope},
	} {
		v, err := optionalFloatAttr(e, attr.name)
		if err != nil {
			return nil, err
		}
		*attr.dst = v
	}

	if raw, ok := e.Attr("channel"); ok {
		ch, err := ParseChannel(raw)
		if err != nil {
			return nil, err
		}
		params.Channel = ch
	}

	return params, nil
}

// ExponentParams carries the parameters of an Exponent node. The exponent
// itself is required, the offset only applies to monCurve styles.
type ExponentParams struct {
	Exponent float64
	Offset   *float64
	Channel  Channel
}

func parseExponentParams(e *xmltree.Element) (*ExponentParams, error) {
	if e == nil {
		return nil, nil
	}

	raw, ok := e.Attr("exponent")
	if !ok {
		return nil, missingField("exponent")
	}

	exponent, err := parseFloat("exponent", raw)
	if err != nil {
		return nil, err
	}

	params := &ExponentParams{Exponent: exponent}

	params.Offset, err = optionalFloatAttr(e, "offset")
	if err != nil {
		return nil, err
	}

	if raw, ok := e.Attr("channel"); ok {
		ch, err := ParseChannel(raw)
		if err != nil {
			return nil, errors.Wrap(err, "ExponentParams")
		}
		params.Channel = ch
	}

	return params, nil
}
