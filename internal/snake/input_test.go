package snake

import "testing"

type fakeController struct {
	dirs     []Direction
	pauses   int
	starts   int
	restarts int
}

func (f *fakeController) SetDirection(d Direction) { f.dirs = append(f.dirs, d) }
func (f *fakeController) Pause()                   { f.pauses++ }
func (f *fakeController) Start()                   { f.starts++ }
func (f *fakeController) Restart()                 { f.restarts++ }

func TestInputRouterResolve(t *testing.T) {
	r := NewInputRouter(&fakeController{})
	tests := []struct {
		symbol string
		want   Intent
	}{
		{"up", IntentUp},
		{"ArrowUp", IntentUp},
		{"W", IntentUp},
		{"k", IntentUp},
		{"arrowdown", IntentDown},
		{"s", IntentDown},
		{"j", IntentDown},
		{"left", IntentLeft},
		{"a", IntentLeft},
		{"h", IntentLeft},
		{"right", IntentRight},
		{"D", IntentRight},
		{"l", IntentRight},
		{" ", IntentPause},
		{"p", IntentPause},
		{"Spacebar", IntentPause},
		{"enter", IntentStart},
		{"r", IntentRestart},
		{"x", IntentNone},
		{"", IntentNone},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.symbol); got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.symbol, got, tt.want)
		}
	}
}

func TestInputRouterDispatch(t *testing.T) {
	ctrl := &fakeController{}
	r := NewInputRouter(ctrl)

	for _, s := range []string{"up", "a", "p", "enter", "r", "q", "L"} {
		r.Route(s)
	}

	want := []Direction{Up, Left, Right}
	if len(ctrl.dirs) != len(want) {
		t.Fatalf("dirs = %v, want %v", ctrl.dirs, want)
	}
	for i := range want {
		if ctrl.dirs[i] != want[i] {
			t.Errorf("dirs[%d] = %v, want %v", i, ctrl.dirs[i], want[i])
		}
	}
	if ctrl.pauses != 1 || ctrl.starts != 1 || ctrl.restarts != 1 {
		t.Errorf("pauses=%d starts=%d restarts=%d", ctrl.pauses, ctrl.starts, ctrl.restarts)
	}
}

func TestInputRouterBind(t *testing.T) {
	ctrl := &fakeController{}
	r := NewInputRouter(ctrl)
	r.Bind("z", IntentRestart)
	r.Bind("p", IntentNone)

	if r.Route("Z") != IntentRestart || ctrl.restarts != 1 {
		t.Error("custom binding not routed")
	}
	if r.Route("p") != IntentNone || ctrl.pauses != 0 {
		t.Error("removed binding still routed")
	}
}

func TestInputRouterDrivesGame(t *testing.T) {
	g, clock := newTestGame(t, 20, nil)
	setFood(g, Point{0, 0})
	r := NewInputRouter(g)

	r.Route("arrowup")
	clock.Advance(tick)
	r.Route("p")
	if g.Phase() != PhasePaused {
		t.Fatalf("Phase = %v, want paused", g.Phase())
	}
	if head := g.Snapshot().Head(); head != (Point{10, 9}) {
		t.Errorf("head = %v, want (10,9)", head)
	}
}
