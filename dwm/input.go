package main

import (
	"log/slog"
	"os/exec"
	"syscall"

	xp "github.com/BurntSushi/xgb/xproto"
)

const xkNumLock = 0xff7f

// numLockMask is the modifier bit the X server happens to have assigned to
// Num Lock on this keyboard; cleanMask strips it (and CapsLock) from event
// state before comparing against a binding's mod field, the same
// indifference-to-lock-keys dwm.c's CLEANMASK macro provides.
var numLockMask uint16

// updateNumLockMask recomputes numLockMask by finding Num Lock's keycode and
// looking it up in the modifier mapping. Mirrors dwm.c's updatenumlockmask,
// via the keycode-scanning approach grounded in moukhtar22-doWM's
// getNumLockMask.
func updateNumLockMask() {
	numLockMask = 0
	kc := keysymToKeycode(xkNumLock)
	if kc == 0 {
		return
	}
	modMap, err := xp.GetModifierMapping(xu.Conn()).Reply()
	if err != nil {
		slog.Debug("get modifier mapping failed", "err", err)
		return
	}
	for modIndex := 0; modIndex < 8; modIndex++ {
		for i := 0; i < int(modMap.KeycodesPerModifier); i++ {
			idx := modIndex*int(modMap.KeycodesPerModifier) + i
			if idx < len(modMap.Keycodes) && modMap.Keycodes[idx] == kc {
				numLockMask = 1 << uint(modIndex)
				return
			}
		}
	}
}

func cleanMask(mask uint16) uint16 {
	return mask &^ (numLockMask | xp.ModMaskLock) &
		(xp.ModMaskShift | xp.ModMaskControl | xp.ModMask1 | xp.ModMask2 |
			xp.ModMask3 | xp.ModMask4 | xp.ModMask5)
}

// keysymToKeycode scans the keyboard mapping for the first keycode whose
// keysym list contains sym. Mirrors dwm.c's XKeysymToKeycode (via Xlib);
// xgb has no such helper, so this does the GetKeyboardMapping scan
// directly, grounded on moukhtar22-doWM's getKeycodeForKeysym.
func keysymToKeycode(sym uint32) xp.Keycode {
	setup := xp.Setup(xu.Conn())
	first, last := setup.MinKeycodes, setup.MaxKeycodes
	count := last - first + 1
	reply, err := xp.GetKeyboardMapping(xu.Conn(), first, count).Reply()
	if err != nil {
		return 0
	}
	per := int(reply.KeysymsPerKeycode)
	for kc := int(first); kc <= int(last); kc++ {
		base := (kc - int(first)) * per
		for i := 0; i < per; i++ {
			if base+i >= len(reply.Keysyms) {
				continue
			}
			if uint32(reply.Keysyms[base+i]) == sym {
				return xp.Keycode(kc)
			}
		}
	}
	return 0
}

// grabKeys grabs every keycode named in cfg.Keys on the root window, across
// the numlock/non-numlock and capslock/non-capslock variants dwm.c's
// grabkeys loops over, so a binding fires regardless of those lock states.
func grabKeys() {
	ungrabKeys()
	updateNumLockMask()
	lockVariants := []uint16{0, xp.ModMaskLock, numLockMask, numLockMask | xp.ModMaskLock}
	for _, kb := range cfg.Keys {
		kc := keysymToKeycode(kb.keysym)
		if kc == 0 {
			continue
		}
		for _, extra := range lockVariants {
			err := xp.GrabKeyChecked(xu.Conn(), true, rootWin, kb.mod|extra, kc,
				xp.GrabModeAsync, xp.GrabModeAsync).Check()
			if err != nil {
				slog.Debug("grab key failed", "keysym", kb.keysym, "err", err)
			}
		}
	}
}

func ungrabKeys() {
	if err := xp.UngrabKeyChecked(xu.Conn(), xp.GrabAny, rootWin, xp.ModMaskAny).Check(); err != nil {
		slog.Debug("ungrab keys failed", "err", err)
	}
}

// grabButtons grabs the client-window button bindings on c's window, across
// the lock-key variants. When c is not focused it also grabs every button
// under any modifier synchronously, so a plain click focuses c before the
// click itself is replayed to it. Mirrors dwm.c's grabbuttons.
func grabButtons(c *client, focused bool) {
	if err := xp.UngrabButtonChecked(xu.Conn(), xp.ButtonIndexAny, c.win, xp.ModMaskAny).Check(); err != nil {
		slog.Debug("ungrab buttons failed", "err", err)
	}
	if !focused {
		check(xp.GrabButtonChecked(xu.Conn(), false, c.win,
			xp.EventMaskButtonPress|xp.EventMaskButtonRelease,
			xp.GrabModeSync, xp.GrabModeSync, xp.WindowNone, xp.CursorNone,
			xp.ButtonIndexAny, xp.ModMaskAny))
	}
	lockVariants := []uint16{0, xp.ModMaskLock, numLockMask, numLockMask | xp.ModMaskLock}
	for _, bb := range cfg.Buttons {
		if bb.click != clkClientWin {
			continue
		}
		for _, extra := range lockVariants {
			check(xp.GrabButtonChecked(xu.Conn(), false, c.win,
				xp.EventMaskButtonPress|xp.EventMaskButtonRelease,
				xp.GrabModeAsync, xp.GrabModeSync, xp.WindowNone, xp.CursorNone,
				bb.button, bb.mod|extra))
		}
	}
}

func handleKeyPress(e xp.KeyPressEvent) {
	kc := e.Detail
	clean := cleanMask(e.State)
	for _, kb := range cfg.Keys {
		if keysymToKeycode(kb.keysym) == kc && cleanMask(kb.mod) == clean && kb.fn != nil {
			kb.fn(selmon, kb.arg)
			return
		}
	}
}

func handleButtonPress(e xp.ButtonPressEvent) {
	var target click
	var c *client
	var m *monitor

	if c = findClient(e.Event); c != nil {
		m = c.mon
		target = clkClientWin
	} else if found := monitorForBarWin(e.Event); found != nil {
		m = found
		target, _ = barClickTarget(m, int(e.EventX))
	} else {
		m = pointtomon(int(e.RootX), int(e.RootY))
		target = clkRootWin
	}
	if m != selmon {
		unfocus(selmon.sel, true)
		selmon = m
		focus(nil)
	}
	if c != nil {
		focus(c)
		restack(selmon)
		check(xp.AllowEventsChecked(xu.Conn(), xp.AllowReplayPointer, e.Time))
	}

	clean := cleanMask(e.State)
	tagMask := uint32(0)
	if target == clkTagBar {
		_, tagMask = barClickTarget(m, int(e.EventX))
	}
	for _, bb := range cfg.Buttons {
		if bb.click != target || bb.button != e.Detail || cleanMask(bb.mod) != clean || bb.fn == nil {
			continue
		}
		a := bb.arg
		if target == clkTagBar && a.ui == 0 {
			a.ui = tagMask
		}
		bb.fn(selmon, a)
		return
	}
}

func monitorForBarWin(win xp.Window) *monitor {
	for m := monStart; m != nil; m = m.next {
		if m.barWin == win {
			return m
		}
	}
	return nil
}

// spawn runs a.s as a detached child process, double-forking by calling
// Setsid so it survives dwm's own eventual exit. Mirrors dwm.c's spawn().
func spawn(_ *monitor, a arg) {
	if len(a.s) == 0 {
		return
	}
	cmd := exec.Command(a.s[0], a.s[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		slog.Debug("spawn failed", "cmd", a.s, "err", err)
		return
	}
	go cmd.Process.Release()
}

// toggleBar flips m's bar visibility, recomputes its work area and
// rearranges. Mirrors dwm.c's togglebar().
func toggleBar(m *monitor, _ arg) {
	m.showBar = !m.showBar
	m.updateBarPosition()
	resizeBar(m)
	arrange(m)
}

// killClient asks the selected client to close via WM_DELETE_WINDOW if it
// supports it, or forcibly destroys it otherwise. Mirrors dwm.c's
// killclient().
func killClient(m *monitor, _ arg) {
	if m.sel == nil {
		return
	}
	if !m.sel.sendEvent(atomWMDeleteWindow) {
		check(xp.GrabServerChecked(xu.Conn()))
		check(xp.SetCloseDownModeChecked(xu.Conn(), xp.CloseDownDestroyAll))
		check(xp.KillClientChecked(xu.Conn(), uint32(m.sel.win)))
		check(xp.UngrabServerChecked(xu.Conn()))
	}
}

// setLayout installs a.lt as m's selected layout, or just toggles between
// the two layout slots when a.lt is nil. Mirrors dwm.c's setlayout().
func setLayout(m *monitor, a arg) {
	if a.lt == nil || a.lt != m.lt[m.sellt] {
		m.sellt ^= 1
	}
	if a.lt != nil {
		m.lt[m.sellt] = a.lt
	}
	m.ltSymbol = m.lt[m.sellt].Symbol
	if m.sel != nil {
		arrange(m)
	} else {
		drawBar(m)
	}
}

// setMFact adjusts m's master-area fraction by a.f, clamped to [0.1, 0.9]
// (dwm.c:1624). Mirrors dwm.c's setmfact(); SPEC_FULL.md §5 resolves the
// REDESIGN FLAG on sign inversion by NOT negating a.f.
func setMFact(m *monitor, a arg) {
	if m.lt[m.sellt].Arrange == nil {
		return
	}
	f := a.f
	if f < 1.0 {
		f += m.mfact
	} else {
		f -= 1.0 // a.f >= 1.0 sets mfact absolutely, biased by 1 to stay disjoint from the delta range
	}
	if f < 0.1 {
		f = 0.1
	} else if f > 0.9 {
		f = 0.9
	}
	m.mfact = f
	arrange(m)
}

func quit(_ *monitor, _ arg) {
	quitRequested = true
}
