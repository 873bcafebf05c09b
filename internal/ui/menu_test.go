package ui

import "testing"

func TestSubmenuAutoSelectsFirstChild(t *testing.T) {
	s := NewSubmenu("root")
	a := NewAction("a", nil)
	s.AddItem(a)
	s.AddItem(NewAction("b", nil))
	if got := s.SelectedIndex(); got != 0 {
		t.Fatalf("selected index = %d, want 0", got)
	}
	if !a.Selected() {
		t.Fatalf("first child not selected")
	}
}

func TestMenuMoveSelectionIsCyclic(t *testing.T) {
	u := New(newFakeSurface(), nil)
	m := u.Menu()
	const n = 4
	for i := 0; i < n; i++ {
		m.AddToRoot(NewAction("item", nil))
	}
	start := m.Current().SelectedIndex()
	for i := 0; i < n; i++ {
		m.MoveSelection(false)
	}
	if got := m.Current().SelectedIndex(); got != start {
		t.Fatalf("after %d forward moves selection = %d, want %d", n, got, start)
	}
	m.MoveSelection(true)
	if got := m.Current().SelectedIndex(); got != n-1 {
		t.Fatalf("backward wraparound landed on %d, want %d", got, n-1)
	}
}

func TestMenuMoveSelectionDeselectsSibling(t *testing.T) {
	u := New(newFakeSurface(), nil)
	m := u.Menu()
	a := NewAction("a", nil)
	b := NewAction("b", nil)
	m.AddToRoot(a)
	m.AddToRoot(b)
	m.MoveSelection(false)
	if a.Selected() {
		t.Fatalf("previous sibling still selected")
	}
	if !b.Selected() {
		t.Fatalf("new sibling not selected")
	}
}

func TestMenuOpenCloseTogglesOverlay(t *testing.T) {
	u := New(newFakeSurface(), nil)
	m := u.Menu()

	m.Open()
	if !u.MenuActive() {
		t.Fatalf("overlay not active after open")
	}
	if got := <-u.Scheduler().requests; got != RequestMenu {
		t.Fatalf("open issued %s request, want menu", got)
	}

	m.Close()
	if u.MenuActive() {
		t.Fatalf("overlay still active after close")
	}
	if got := <-u.Scheduler().requests; got != RequestFull {
		t.Fatalf("close issued %s request, want full", got)
	}
}

func TestMenuExecuteActionFiresAndRequestsMenuRefresh(t *testing.T) {
	u := New(newFakeSurface(), nil)
	m := u.Menu()
	fired := 0
	m.AddToRoot(NewAction("a", func() { fired++ }))
	m.Open()
	drainRequests(u.Scheduler())

	m.ExecuteSelected()
	if fired != 1 {
		t.Fatalf("action fired %d times, want 1", fired)
	}
	if !u.MenuActive() {
		t.Fatalf("action execution closed the overlay")
	}
	if got := <-u.Scheduler().requests; got != RequestMenu {
		t.Fatalf("action issued %s request, want menu", got)
	}
}

func TestMenuExecuteSubmenuDescends(t *testing.T) {
	u := New(newFakeSurface(), nil)
	m := u.Menu()
	sub := NewSubmenu("sub")
	sub.AddItem(NewAction("leaf", nil))
	m.AddToRoot(sub)
	m.Open()
	drainRequests(u.Scheduler())

	m.ExecuteSelected()
	if m.Current() != sub {
		t.Fatalf("current submenu = %q, want %q", m.Current().Title(), sub.Title())
	}
	if !u.MenuActive() {
		t.Fatalf("descending closed the overlay")
	}
	if got := <-u.Scheduler().requests; got != RequestMenu {
		t.Fatalf("descend issued %s request, want menu", got)
	}
}

func TestMenuExecutePageLinkPushesAndCloses(t *testing.T) {
	u := New(newFakeSurface(), nil)
	m := u.Menu()
	page := NewPage("linked")
	m.AddToRoot(NewPageLink("go", page))
	m.Open()
	drainRequests(u.Scheduler())

	m.ExecuteSelected()
	if u.CurrentPage() != page {
		t.Fatalf("linked page not on top of the stack")
	}
	if u.MenuActive() {
		t.Fatalf("overlay still open after page link")
	}
	// The page push fills the slot with a full-kind request before Close can
	// issue its own; exactly one request must be buffered.
	if got := <-u.Scheduler().requests; got != RequestFull {
		t.Fatalf("page link issued %s request, want full", got)
	}
	select {
	case got := <-u.Scheduler().requests:
		t.Fatalf("unexpected second request %s", got)
	default:
	}
}

func TestMenuGoBackAscendsThenCloses(t *testing.T) {
	u := New(newFakeSurface(), nil)
	m := u.Menu()
	sub := NewSubmenu("sub")
	sub.AddItem(NewAction("leaf", nil))
	m.AddToRoot(sub)
	m.Open()
	m.ExecuteSelected()
	drainRequests(u.Scheduler())

	m.GoBack()
	if m.Current() != m.Root() {
		t.Fatalf("go back did not return to root")
	}
	if !u.MenuActive() {
		t.Fatalf("go back from a submenu closed the overlay")
	}

	m.GoBack()
	if u.MenuActive() {
		t.Fatalf("go back at root left the overlay open")
	}
}

func TestPathTitle(t *testing.T) {
	root := NewSubmenu("root")
	mid := NewSubmenu("mid")
	leaf := NewAction("leaf", nil)
	root.AddItem(mid)
	mid.AddItem(leaf)
	if got := PathTitle(leaf); got != "root/mid/leaf" {
		t.Fatalf("path = %q, want root/mid/leaf", got)
	}
}

func TestKindMarker(t *testing.T) {
	cases := []struct {
		kind ItemKind
		want string
	}{
		{ItemAction, "$"},
		{ItemSubmenu, "/"},
		{ItemPage, ">"},
	}
	for _, c := range cases {
		if got := KindMarker(c.kind); got != c.want {
			t.Fatalf("marker for kind %d = %q, want %q", c.kind, got, c.want)
		}
	}
}
