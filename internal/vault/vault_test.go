package vault

import (
	"testing"
	"time"
)

func TestSplitMount(t *testing.T) {
	cases := map[string][2]string{
		"kv/adept/db": {"kv", "adept/db"},
		"kv":          {"kv", ""},
		"":            {"", ""},
	}
	for in, want := range cases {
		m, r := splitMount(in)
		if m != want[0] || r != want[1] {
			t.Errorf("splitMount(%q) = (%q, %q), want %v", in, m, r, want)
		}
	}
}

func TestLookup_Expiry(t *testing.T) {
	c := &Client{cache: map[string]cached{}}
	c.cache["kv/a#k"] = cached{val: "fresh", exp: farFuture}
	c.cache["kv/b#k"] = cached{val: "stale", exp: longAgo}

	if v, ok := c.lookup("kv/a#k"); !ok || v != "fresh" {
		t.Fatalf("fresh lookup = (%q, %v)", v, ok)
	}
	if _, ok := c.lookup("kv/b#k"); ok {
		t.Fatal("expired entry returned")
	}
	if _, ok := c.lookup("kv/c#k"); ok {
		t.Fatal("missing entry returned")
	}
}

var (
	farFuture = time.Now().Add(time.Hour)
	longAgo   = time.Now().Add(-time.Hour)
)
