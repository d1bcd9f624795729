package wire

import "testing"

func TestTagUniqueness(t *testing.T) {
	seen := make(map[Tag]bool, len(allTags))
	for _, tag := range allTags {
		if seen[tag] {
			t.Errorf("duplicate tag: 0x%04X", uint16(tag))
		}
		seen[tag] = true
	}
}

func TestTagsAvoidSentinel(t *testing.T) {
	for _, tag := range allTags {
		if tag == Sentinel {
			t.Errorf("tag 0x%04X collides with the stream sentinel", uint16(tag))
		}
	}
}

func TestNullTagIsZero(t *testing.T) {
	if TagNull != 0 {
		t.Errorf("null tag: got %d, want 0", TagNull)
	}
}
