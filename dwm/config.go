package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

// modKey and altKey name the modifier masks bindings are defined against,
// mirroring config.h's MODKEY/ALTKEY #defines.
const (
	modKey = xp.ModMask4 // the "super"/"windows" key
	altKey = xp.ModMask1
)

// click identifies which region of the bar (or client) a button binding
// targets, mirroring config.h's Clk enum.
type click int

const (
	clkTagBar click = iota
	clkLtSymbol
	clkStatusText
	clkWinTitle
	clkClientWin
	clkRootWin
)

// arg is the single-field-in-use union config.h's Arg passes to action
// functions: ui for tag masks, i for signed offsets/stack directions, f for
// mfact deltas, s for a command line, lt for a direct layout pointer.
type arg struct {
	ui uint32
	i  int
	f  float64
	s  []string
	lt *layout
}

type keyBinding struct {
	mod    uint16
	keysym uint32
	fn     func(*monitor, arg)
	arg    arg
}

type buttonBinding struct {
	click  click
	mod    uint16
	button xp.Button
	fn     func(*monitor, arg)
	arg    arg
}

// rule matches a newly-managed client against class/instance/title
// substrings (empty string matches anything) and assigns it tags, floating
// status and a home monitor. Mirrors config.h's Rule/rules[].
type rule struct {
	class      string
	instance   string
	title      string
	tags       uint32
	isFloating bool
	monitor    int // -1 means "don't move it"
}

// scheme is a border/foreground/background color triple as hex strings,
// parsed once by drawadapter at startup. Mirrors config.h's colors[] rows.
type scheme struct {
	Border string
	Fg     string
	Bg     string
}

// config is the compiled-in Config collaborator: every tunable dwm.c would
// otherwise take from config.h. There is exactly one instance, cfg, built at
// init time; nothing in this package mutates it after startup.
type config struct {
	Fonts    []string
	BorderPx int
	Snap     int
	Gap      int
	ShowBar  bool
	TopBar   bool

	BarHeight int

	Tags  [numTags]string
	Rules []rule

	MFact       float64
	NMaster     int
	ResizeHints bool
	Layouts     []*layout

	Keys    []keyBinding
	Buttons []buttonBinding

	Normal   scheme
	Selected scheme
	Urgent   scheme

	// WarpSkipsDialogs resolves spec.md's open question on whether
	// pointer warp-on-focus should skip transient/dialog windows. This
	// implementation defaults to skipping them, since warping the pointer
	// onto a just-opened dialog is more often surprising than helpful.
	WarpSkipsDialogs bool
}

// Package-level layout table entries. isMonocle compares m.lt[m.sellt]
// against layoutMonocle by pointer identity — Go's func values aren't
// comparable to each other, so the layout table must hand out the same
// *layout values cfg.Layouts and every monitor's lt[] slots point to.
var (
	layoutTile        = &layout{Symbol: "[]=", Arrange: tileArrange}
	layoutFloating    = &layout{Symbol: "><>", Arrange: nil}
	layoutMonocle     = &layout{Symbol: "[M]", Arrange: monocleArrange}
	layoutBStack      = &layout{Symbol: "TTT", Arrange: bstackArrange}
	layoutBStackHoriz = &layout{Symbol: "===", Arrange: bstackHorizArrange}
)

var cfg = config{
	Fonts:     []string{"monospace:size=10"},
	BorderPx:  1,
	Snap:      32,
	Gap:       6,
	ShowBar:   true,
	TopBar:    true,
	BarHeight: 20,

	Tags: [numTags]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
	Rules: []rule{
		{class: "Gimp", tags: 0, isFloating: true, monitor: -1},
		{class: "Firefox", tags: 1 << 8, isFloating: false, monitor: -1},
	},

	MFact:       0.55,
	NMaster:     1,
	ResizeHints: true,
	Layouts: []*layout{
		layoutTile,
		layoutFloating,
		layoutMonocle,
		layoutBStack,
		layoutBStackHoriz,
	},

	Normal:   scheme{Border: "#4000FF", Fg: "#dddddd", Bg: "#222222"},
	Selected: scheme{Border: "#00BFFF", Fg: "#ffffff", Bg: "#005577"},
	Urgent:   scheme{Border: "#ff0000", Fg: "#000000", Bg: "#ffff00"},

	WarpSkipsDialogs: true,
}

func init() {
	cfg.Keys = buildKeys()
	cfg.Buttons = buildButtons()
}

// tagKeys returns the four bindings every tag shares: view, toggleview, tag
// and toggletag, each masked to 1<<i. Mirrors config.h's TAGKEYS macro.
func tagKeys(keysym uint32, i uint) []keyBinding {
	mask := uint32(1) << i
	return []keyBinding{
		{mod: modKey, keysym: keysym, fn: view, arg: arg{ui: mask}},
		{mod: modKey | xp.ModMaskControl, keysym: keysym, fn: toggleview, arg: arg{ui: mask}},
		{mod: modKey | xp.ModMaskShift, keysym: keysym, fn: tagClient, arg: arg{ui: mask}},
		{mod: modKey | xp.ModMaskControl | xp.ModMaskShift, keysym: keysym, fn: toggleTag, arg: arg{ui: mask}},
	}
}

// stackDirXxx are the arg.i values focusStack/pushStack (focus.go)
// recognize: the two relative moves, reselecting the previous selection, and
// four absolute stack slots. Kept as a small disjoint enum rather than
// dwm.c's bit-packed INC()/PREVSEL encoding, since Go has no use for sharing
// the union field with a float or string here. Mirrors config.h's STACKKEYS
// macro one binding at a time.
const (
	stackDirForward stackDir = iota + 1
	stackDirBackward
	stackDirPrevSel
	stackDirFirst
	stackDirSecond
	stackDirThird
	stackDirLast
)

type stackDir int

// stackKeys returns the seven directional bindings STACKKEYS expands to for
// one modifier/action pair (focus vs push): j/k move relatively by one
// position, grave reselects the previous selection, and the arrow keys jump
// to an absolute stack slot.
func stackKeys(mod uint16, fn func(*monitor, arg)) []keyBinding {
	return []keyBinding{
		{mod: mod, keysym: xkJ, fn: fn, arg: arg{i: int(stackDirForward)}},
		{mod: mod, keysym: xkK, fn: fn, arg: arg{i: int(stackDirBackward)}},
		{mod: mod, keysym: xkGrave, fn: fn, arg: arg{i: int(stackDirPrevSel)}},
		{mod: mod, keysym: xkLeft, fn: fn, arg: arg{i: int(stackDirFirst)}},
		{mod: mod, keysym: xkUp, fn: fn, arg: arg{i: int(stackDirSecond)}},
		{mod: mod, keysym: xkDown, fn: fn, arg: arg{i: int(stackDirThird)}},
		{mod: mod, keysym: xkRight, fn: fn, arg: arg{i: int(stackDirLast)}},
	}
}

func buildKeys() []keyBinding {
	keys := []keyBinding{
		{mod: modKey, keysym: xkD, fn: spawn, arg: arg{s: []string{"dmenu_run"}}},
		{mod: modKey | xp.ModMaskShift, keysym: xkReturn, fn: spawn, arg: arg{s: []string{"urxvtc"}}},
		{mod: modKey | xp.ModMaskShift, keysym: xkB, fn: toggleBar, arg: arg{}},
		{mod: modKey, keysym: xkPlus, fn: setMFact, arg: arg{f: 0.05}},
		{mod: modKey, keysym: xkMinus, fn: setMFact, arg: arg{f: -0.05}},
		{mod: modKey, keysym: xkReturn, fn: zoom, arg: arg{}},
		{mod: modKey, keysym: xkTab, fn: view, arg: arg{ui: 0}},
		{mod: modKey, keysym: xkDelete, fn: killClient, arg: arg{}},
		{mod: modKey, keysym: xkT, fn: setLayout, arg: arg{lt: layoutTile}},
		{mod: modKey, keysym: xkF, fn: setLayout, arg: arg{lt: layoutFloating}},
		{mod: modKey, keysym: xkO, fn: setLayout, arg: arg{lt: layoutMonocle}},
		{mod: modKey, keysym: xkSpace, fn: setLayout, arg: arg{}},
		{mod: modKey | xp.ModMaskShift, keysym: xkSpace, fn: toggleFloating, arg: arg{}},
		{mod: modKey, keysym: xk0, fn: view, arg: arg{ui: allTags}},
		{mod: modKey | xp.ModMaskShift, keysym: xk0, fn: tagClient, arg: arg{ui: allTags}},
		{mod: modKey, keysym: xkPeriod, fn: focusMon, arg: arg{i: 1}},
		{mod: modKey, keysym: xkComma, fn: focusMon, arg: arg{i: -1}},
		{mod: modKey | xp.ModMaskShift, keysym: xkPeriod, fn: tagMon, arg: arg{i: 1}},
		{mod: modKey | xp.ModMaskShift, keysym: xkComma, fn: tagMon, arg: arg{i: -1}},
		{mod: modKey | xp.ModMaskShift, keysym: xkQ, fn: quit, arg: arg{}},
	}
	keys = append(keys, stackKeys(modKey, focusStack)...)
	keys = append(keys, stackKeys(modKey|xp.ModMaskShift, pushStack)...)
	tagKeysyms := []uint32{xk1, xk2, xk3, xk4, xk5, xk6, xk7, xk8, xk9}
	for i, ks := range tagKeysyms {
		keys = append(keys, tagKeys(ks, uint(i))...)
	}
	return keys
}

func buildButtons() []buttonBinding {
	return []buttonBinding{
		{click: clkLtSymbol, button: 1, fn: setLayout, arg: arg{}},
		{click: clkLtSymbol, button: 3, fn: setLayout, arg: arg{lt: layoutMonocle}},
		{click: clkWinTitle, button: 2, fn: zoom, arg: arg{}},
		{click: clkClientWin, mod: modKey, button: 1, fn: moveMouse, arg: arg{}},
		{click: clkClientWin, mod: modKey, button: 2, fn: toggleFloating, arg: arg{}},
		{click: clkClientWin, mod: modKey, button: 3, fn: resizeMouse, arg: arg{}},
		{click: clkTagBar, button: 1, fn: view, arg: arg{}},
		{click: clkTagBar, button: 3, fn: toggleview, arg: arg{}},
		{click: clkTagBar, mod: modKey, button: 1, fn: tagClient, arg: arg{}},
		{click: clkTagBar, mod: modKey, button: 3, fn: toggleTag, arg: arg{}},
	}
}
