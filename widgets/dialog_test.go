package widgets

import (
	"errors"
	"testing"
)

func TestDialogConfirm(t *testing.T) {
	h := newFakeHost()
	var d *Dialog
	h.dialogWait = func(w *fakeDialogWindow) {
		if !w.focused || !w.grabbed {
			t.Errorf("dialog not focused and grabbed before waiting")
		}
		if err := d.Confirm(); err != nil {
			t.Errorf("Confirm: %v", err)
		}
	}
	d, err := NewDialog(h, fakeHandle("."), CollectorFunc(func() (Result, error) {
		return Result{"x": 1}, nil
	}), WithTitle("Sample"))
	if err != nil {
		t.Fatalf("NewDialog: %v", err)
	}
	if h.dialogs[0].cfg.Title != "Sample" {
		t.Fatalf("title = %q", h.dialogs[0].cfg.Title)
	}
	res, err := d.Show()
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if len(res) != 1 || res["x"] != 1 {
		t.Fatalf("result = %v, want map[x:1]", res)
	}
	if !d.Confirmed() || d.State() != DialogDestroyed {
		t.Fatalf("confirmed=%v state=%s", d.Confirmed(), d.State())
	}
	if h.dialogs[0].destroyed != 1 {
		t.Fatalf("window destroyed %d times", h.dialogs[0].destroyed)
	}
}

func TestDialogCancel(t *testing.T) {
	h := newFakeHost()
	var d *Dialog
	h.dialogWait = func(*fakeDialogWindow) { d.Cancel() }
	d, err := NewDialog(h, fakeHandle("."), CollectorFunc(func() (Result, error) {
		return Result{"x": 1}, nil
	}))
	if err != nil {
		t.Fatalf("NewDialog: %v", err)
	}
	res, err := d.Show()
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("cancelled dialog returned %v", res)
	}
	if d.Confirmed() {
		t.Fatalf("cancelled dialog reports confirmed")
	}
	d.Cancel()
	if h.dialogs[0].destroyed != 1 {
		t.Fatalf("window destroyed %d times", h.dialogs[0].destroyed)
	}
}

func TestDialogWindowManagerClose(t *testing.T) {
	h := newFakeHost()
	h.dialogWait = func(w *fakeDialogWindow) { w.exists = false }
	d, err := NewDialog(h, fakeHandle("."), CollectorFunc(func() (Result, error) {
		return Result{"x": 1}, nil
	}))
	if err != nil {
		t.Fatalf("NewDialog: %v", err)
	}
	res, err := d.Show()
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if len(res) != 0 || d.Confirmed() || d.State() != DialogDestroyed {
		t.Fatalf("result=%v confirmed=%v state=%s", res, d.Confirmed(), d.State())
	}
}

func TestDialogCollectorError(t *testing.T) {
	h := newFakeHost()
	boom := errors.New("bad input")
	calls := 0
	var d *Dialog
	h.dialogWait = func(*fakeDialogWindow) {
		if err := d.Confirm(); !errors.Is(err, boom) {
			t.Errorf("Confirm error = %v", err)
		}
		if d.State() != DialogShown {
			t.Errorf("failed confirm left state %s", d.State())
		}
		d.Cancel()
	}
	d, err := NewDialog(h, fakeHandle("."), CollectorFunc(func() (Result, error) {
		calls++
		return Result{"partial": true}, boom
	}))
	if err != nil {
		t.Fatalf("NewDialog: %v", err)
	}
	res, err := d.Show()
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if len(res) != 0 || calls != 1 {
		t.Fatalf("result=%v calls=%d", res, calls)
	}
}

func TestDialogResultIsCopied(t *testing.T) {
	h := newFakeHost()
	var d *Dialog
	h.dialogWait = func(*fakeDialogWindow) { _ = d.Confirm() }
	src := Result{"k": "v"}
	d, _ = NewDialog(h, fakeHandle("."), CollectorFunc(func() (Result, error) { return src, nil }))
	res, _ := d.Show()
	res["k"] = "changed"
	src["k"] = "changed too"
	if again, _ := d.Show(); again != nil {
		t.Fatalf("second Show returned %v", again)
	}
	if d.result["k"] != "v" {
		t.Fatalf("stored result aliased: %v", d.result)
	}
}

func TestDialogLifecycleErrors(t *testing.T) {
	h := newFakeHost()
	d, err := NewDialog(h, fakeHandle("."), CollectorFunc(func() (Result, error) { return nil, nil }))
	if err != nil {
		t.Fatalf("NewDialog: %v", err)
	}
	if err := d.Confirm(); !errors.Is(err, ErrState) {
		t.Fatalf("Confirm before Show: %v", err)
	}
	if _, err := d.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if _, err := d.Show(); !errors.Is(err, ErrState) {
		t.Fatalf("second Show: %v", err)
	}

	if _, err := NewDialog(h, fakeHandle("."), nil); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("nil collector: %v", err)
	}
}

func TestDialogStateString(t *testing.T) {
	tests := map[DialogState]string{
		DialogCreated:   "created",
		DialogShown:     "shown",
		DialogConfirmed: "confirmed",
		DialogCancelled: "cancelled",
		DialogDestroyed: "destroyed",
		DialogState(9):  "DialogState(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(s), got, want)
		}
	}
}
