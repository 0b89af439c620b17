package main

import "testing"

func TestRuleMatches(t *testing.T) {
	var tests = []struct {
		r   rule
		c   client
		out bool
	}{
		{rule{class: "Firefox"}, client{class: "Firefox"}, true},
		{rule{class: "Firefox"}, client{class: "firefox-esr"}, false},
		{rule{class: "fox"}, client{class: "Firefox"}, true},
		{rule{instance: "dev"}, client{instance: "dev-console"}, true},
		{rule{title: "Save As"}, client{name: "Save As — document.txt"}, true},
		{rule{}, client{class: "anything"}, false}, // an empty rule matches nothing
	}
	for _, tt := range tests {
		if got := ruleMatches(tt.r, &tt.c); got != tt.out {
			t.Errorf("ruleMatches(%+v, %+v) = %v, want %v", tt.r, tt.c, got, tt.out)
		}
	}
}

func TestApplyRulesFloatingAndTags(t *testing.T) {
	oldRules := cfg.Rules
	cfg.Rules = []rule{
		{class: "Gimp", isFloating: true, monitor: -1},
		{class: "Firefox", tags: 1 << 8, monitor: -1},
	}
	defer func() { cfg.Rules = oldRules }()

	m := newTestMonitor()
	m.tagset[m.seltags] = 1 << 2

	c := &client{mon: m, class: "Gimp"}
	applyRules(c)
	if !c.isFloating {
		t.Errorf("applyRules(Gimp) did not set isFloating")
	}

	c2 := &client{mon: m, class: "Firefox"}
	applyRules(c2)
	if c2.tags != 1<<8 {
		t.Errorf("applyRules(Firefox) tags = %b, want %b", c2.tags, 1<<8)
	}

	c3 := &client{mon: m, class: "xterm"}
	applyRules(c3)
	if c3.tags != m.tagset[m.seltags] {
		t.Errorf("applyRules(unmatched) tags = %b, want monitor's current tagset %b", c3.tags, m.tagset[m.seltags])
	}
}
