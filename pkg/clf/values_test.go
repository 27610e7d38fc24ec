package clf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colour-pipeline/go-clf/pkg/clf"
)

func TestParseBitDepth(t *testing.T) {
	for _, token := range []string{"8i", "10i", "12i", "16i", "16f", "32f"} {
		got, err := clf.ParseBitDepth(token)
		require.NoError(t, err)
		assert.Equal(t, clf.BitDepth(token), got)
	}
}

func TestParseBitDepthRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"24i", "8", "i8", "64f", "", "12I"} {
		_, err := clf.ParseBitDepth(token)

		decodeErr := &clf.DecodeError{}
		require.ErrorAs(t, err, &decodeErr, "token %q", token)
		assert.Equal(t, token, decodeErr.Value)
	}
}

func TestBitDepthScaleFactor(t *testing.T) {
	assert.Equal(t, 255.0, clf.BitDepth8i.ScaleFactor())
	assert.Equal(t, 1023.0, clf.BitDepth10i.ScaleFactor())
	assert.Equal(t, 4095.0, clf.BitDepth12i.ScaleFactor())
	assert.Equal(t, 65535.0, clf.BitDepth16i.ScaleFactor())
	assert.Equal(t, 1.0, clf.BitDepth16f.ScaleFactor())
	assert.Equal(t, 1.0, clf.BitDepth32f.ScaleFactor())
}

func TestParseInterpolation(t *testing.T) {
	got1, err := clf.ParseInterpolation1D("linear")
	require.NoError(t, err)
	assert.Equal(t, clf.Interpolation1DLinear, got1)

	// The 1D and 3D sets are distinct.
	_, err = clf.ParseInterpolation1D("trilinear")
	assert.Error(t, err)

	got3, err := clf.ParseInterpolation3D("tetrahedral")
	require.NoError(t, err)
	assert.Equal(t, clf.Interpolation3DTetrahedral, got3)

	_, err = clf.ParseInterpolation3D("linear")
	assert.Error(t, err)
}

func TestParseStyles(t *testing.T) {
	rs, err := clf.ParseRangeStyle("noClamp")
	require.NoError(t, err)
	assert.Equal(t, clf.RangeStyleNoClamp, rs)

	_, err = clf.ParseRangeStyle("clamp")
	assert.Error(t, err)

	ls, err := clf.ParseLogStyle("cameraLinToLog")
	require.NoError(t, err)
	assert.Equal(t, clf.LogStyleCameraLinToLog, ls)

	_, err = clf.ParseLogStyle("log")
	assert.Error(t, err)

	es, err := clf.ParseExponentStyle("monCurveMirrorRev")
	require.NoError(t, err)
	assert.Equal(t, clf.ExponentStyleMonCurveMirrorRev, es)

	_, err = clf.ParseExponentStyle("basic")
	assert.Error(t, err)

	cs, err := clf.ParseCDLStyle("FwdNoClamp")
	require.NoError(t, err)
	assert.Equal(t, clf.CDLStyleFwdNoClamp, cs)

	_, err = clf.ParseCDLStyle("forward")
	assert.Error(t, err)

	ch, err := clf.ParseChannel("G")
	require.NoError(t, err)
	assert.Equal(t, clf.ChannelG, ch)

	_, err = clf.ParseChannel("A")
	assert.Error(t, err)
}
