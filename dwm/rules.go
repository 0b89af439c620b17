package main

import "strings"

// applyRules matches c's class/instance/title against cfg.Rules (substring
// match, empty pattern matches anything) and applies every rule that
// matches, in table order: its tags are ORed into c.tags, c.isFloating is set
// to the rule's isFloating (the last matching rule wins), and c moves to the
// named monitor number if one was given. If the matching rules contribute no
// tags (or none matches), c takes its monitor's selected tagset. Mirrors
// dwm.c's applyrules().
func applyRules(c *client) {
	c.isFloating = false
	c.tags = 0

	for _, r := range cfg.Rules {
		if !ruleMatches(r, c) {
			continue
		}
		c.isFloating = r.isFloating
		c.tags |= r.tags
		if r.monitor >= 0 {
			for m := monStart; m != nil; m = m.next {
				if m.num == r.monitor {
					c.mon = m
					break
				}
			}
		}
	}

	if c.tags&allTags != 0 {
		c.tags &= allTags
	} else if c.mon != nil {
		c.tags = c.mon.tagset[c.mon.seltags]
	}
}

func ruleMatches(r rule, c *client) bool {
	if r.class != "" && !strings.Contains(c.class, r.class) {
		return false
	}
	if r.instance != "" && !strings.Contains(c.instance, r.instance) {
		return false
	}
	if r.title != "" && !strings.Contains(c.name, r.title) {
		return false
	}
	return r.class != "" || r.instance != "" || r.title != ""
}
