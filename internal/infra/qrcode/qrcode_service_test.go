package qrcode

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_RenderPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.RenderPNG("otpauth://totp/authd:resident?secret=JBSWY3DPEHPK3PXP")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestQRCodeService_RenderPNG_EmptyContent(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.RenderPNG("")
	assert.Error(t, err)
}

func TestQRCodeService_RenderDataURI(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	uri, err := svc.RenderDataURI("otpauth://totp/authd:resident?secret=JBSWY3DPEHPK3PXP")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, pngMagic))
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.RenderPNG("fallback")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
