package main

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
	xp "github.com/BurntSushi/xgb/xproto"
)

// Atom table. ICCCM atoms are interned directly (xgbutil/xprop has no
// higher-level wrapper for WM_PROTOCOLS' member atoms); the EWMH atoms in
// netSupported are advertised in bulk via ewmh.SupportedSet. _NET_WM_PID is
// advertised but nothing in this package reads it.
var (
	atomWMProtocols     xp.Atom
	atomWMDeleteWindow  xp.Atom
	atomWMTakeFocus     xp.Atom
	atomWMState         xp.Atom
	atomNetActiveWindow xp.Atom
)

var netSupported = []string{
	"_NET_SUPPORTED",
	"_NET_ACTIVE_WINDOW",
	"_NET_WM_NAME",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_WM_WINDOW_TYPE_NOTIFICATION",
	"_NET_WM_WINDOW_TYPE_UTILITY",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_CLIENT_LIST",
	"_NET_WM_PID",
}

func internAtom(name string) (xp.Atom, error) {
	a, err := xprop.Atm(xu, name)
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	return a, nil
}

func atomName(a xp.Atom) (string, error) {
	return xprop.AtomName(xu, a)
}

func initAtoms() error {
	var err error
	if atomWMProtocols, err = internAtom("WM_PROTOCOLS"); err != nil {
		return err
	}
	if atomWMDeleteWindow, err = internAtom("WM_DELETE_WINDOW"); err != nil {
		return err
	}
	if atomWMTakeFocus, err = internAtom("WM_TAKE_FOCUS"); err != nil {
		return err
	}
	if atomWMState, err = internAtom("WM_STATE"); err != nil {
		return err
	}
	if atomNetActiveWindow, err = internAtom("_NET_ACTIVE_WINDOW"); err != nil {
		return err
	}
	return ewmh.SupportedSet(xu, netSupported)
}

// sendClientMessage delivers a synthetic ClientMessage of type kind carrying
// data as its first 32-bit datum, the shape every WM_PROTOCOLS message
// (WM_DELETE_WINDOW, WM_TAKE_FOCUS) and _NET_ACTIVE_WINDOW request uses.
func sendClientMessage(win xp.Window, kind xp.Atom, data xp.Atom) error {
	ev := xp.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   kind,
		Data: xp.ClientMessageDataUnionData32New([]uint32{
			uint32(data),
			uint32(lastEventTime),
			0, 0, 0,
		}),
	}
	return xp.SendEventChecked(xu.Conn(), false, win, xp.EventMaskNoEvent, string(ev.Bytes())).Check()
}

// netWMNameGet reads win's _NET_WM_NAME. Used by updateTitle when WM_NAME
// cannot be read or is empty.
func netWMNameGet(win xp.Window) (string, error) {
	return ewmh.WmNameGet(xu, win)
}
