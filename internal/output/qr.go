package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mdp/qrterminal/v3"
	"golang.org/x/term"
	"rsc.io/qr"

	"github.com/faithfularchive/arcon/internal/wallet"
)

// addressQRQuietZone is the number of empty blocks around the code. One
// block is enough for the short payload an address is.
const addressQRQuietZone = 1

// CanRenderQR checks if the output writer is a terminal suitable for QR rendering.
func CanRenderQR(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
}

// RenderAddressQR renders a wallet address as a terminal QR code so it
// can be scanned straight off the screen. The address is validated
// first; a 43-character base64url payload fits a low error-correction
// code drawn with half-height blocks. Writers that are not terminals
// produce no output and no error.
func RenderAddressQR(w io.Writer, address string) error {
	if !wallet.IsValidAddress(address) {
		return fmt.Errorf("not an arweave address: %q", address)
	}

	if !CanRenderQR(w) {
		return nil
	}

	qrterminal.GenerateWithConfig(address, qrterminal.Config{
		Level:          qr.L,
		Writer:         w,
		QuietZone:      addressQRQuietZone,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
	})

	return nil
}
