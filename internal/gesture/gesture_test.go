package gesture

import "testing"

func TestEnd_BelowThresholdIsTap(t *testing.T) {
	n := New()

	n.Start(100)
	if cmd := n.End(51); cmd != None {
		t.Errorf("49px leftward drag should be a tap, got %v", cmd)
	}

	n.Start(100)
	if cmd := n.End(149); cmd != None {
		t.Errorf("49px rightward drag should be a tap, got %v", cmd)
	}

	n.Start(100)
	if cmd := n.End(50); cmd != None {
		t.Errorf("drag of exactly the threshold should be a tap, got %v", cmd)
	}
}

func TestEnd_AboveThreshold(t *testing.T) {
	n := New()

	// Leftward finger motion: end left of start.
	n.Start(100)
	if cmd := n.End(49); cmd != NextMonth {
		t.Errorf("51px leftward drag should be NextMonth, got %v", cmd)
	}

	n.Start(100)
	if cmd := n.End(151); cmd != PrevMonth {
		t.Errorf("51px rightward drag should be PrevMonth, got %v", cmd)
	}
}

func TestEnd_WithoutStart(t *testing.T) {
	n := New()
	if cmd := n.End(0); cmd != None {
		t.Errorf("end without start should be None, got %v", cmd)
	}
}

func TestEnd_ResolvesGesture(t *testing.T) {
	n := New()
	n.Start(200)
	n.End(0)
	if cmd := n.End(0); cmd != None {
		t.Errorf("second end must not re-fire, got %v", cmd)
	}
}

func TestStart_OverwritesUnresolved(t *testing.T) {
	n := New()
	n.Start(500)
	n.Start(100) // new gesture, old one discarded
	if cmd := n.End(90); cmd != None {
		t.Errorf("delta measured from stale start, got %v", cmd)
	}
}

func TestCancel(t *testing.T) {
	n := New()
	n.Start(100)
	n.Cancel()
	if cmd := n.End(0); cmd != None {
		t.Errorf("cancelled gesture must not fire, got %v", cmd)
	}
}

func TestCustomThreshold(t *testing.T) {
	n := NewWithThreshold(3)
	n.Start(10)
	if cmd := n.End(6); cmd != NextMonth {
		t.Errorf("4-cell drag over threshold 3 should navigate, got %v", cmd)
	}
}
