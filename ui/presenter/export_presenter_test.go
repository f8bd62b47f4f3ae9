package presenter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/soocke/collage-go/domain/export"
	"github.com/soocke/collage-go/domain/render"
	"github.com/soocke/collage-go/ui/model"
)

type mockExporter struct {
	calls int
	src   export.Source
	res   export.Result
	err   error
}

func (e *mockExporter) Export(ctx context.Context, src export.Source) (export.Result, error) {
	e.calls++
	e.src = src
	return e.res, e.err
}

type mockExportView struct {
	notices []string
	status  string
}

func (v *mockExportView) Notify(msg string)     { v.notices = append(v.notices, msg) }
func (v *mockExportView) SetStatus(text string) { v.status = text }

func TestNotice(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{export.ErrNoContent, NoticeNoContent},
		{fmt.Errorf("%w: window", export.ErrPopupBlocked), NoticePopupBlocked},
		{fmt.Errorf("%w: %w", export.ErrExportFailed, export.ErrEncodeFailed), NoticeExportFailed},
		{errors.New("disk full"), NoticeExportFailed},
	}
	for _, c := range cases {
		if got := Notice(c.err); got != c.want {
			t.Errorf("Notice(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestExportPresenter_Outcomes(t *testing.T) {
	cases := []struct {
		name       string
		res        export.Result
		err        error
		wantNotice string
		wantStatus string
	}{
		{"download", export.Result{Strategy: export.StrategyDownload, Filename: "c.jpg", Location: "/dl/c.jpg"}, nil, "", "Saved /dl/c.jpg"},
		{"share", export.Result{Strategy: export.StrategyShare, Filename: "c.jpg"}, nil, "", "Shared c.jpg"},
		{"fallback", export.Result{Strategy: export.StrategyFallback, Filename: "c.jpg"}, nil, "", "Opened c.jpg in the browser"},
		{"cancelled", export.Result{Strategy: export.StrategyShare, Cancelled: true}, nil, "", ""},
		{"no content", export.Result{}, export.ErrNoContent, NoticeNoContent, ""},
		{"blocked", export.Result{}, export.ErrPopupBlocked, NoticePopupBlocked, ""},
		{"failed", export.Result{}, export.ErrExportFailed, NoticeExportFailed, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ex := &mockExporter{res: c.res, err: c.err}
			view := &mockExportView{}
			p := NewExportPresenter(ex, &render.Surface{}, view, nil)
			p.Export(context.Background())
			if ex.calls != 1 {
				t.Fatalf("expected one export call, got %d", ex.calls)
			}
			if c.wantNotice == "" && len(view.notices) != 0 {
				t.Fatalf("unexpected notice %v", view.notices)
			}
			if c.wantNotice != "" && (len(view.notices) != 1 || view.notices[0] != c.wantNotice) {
				t.Fatalf("notices = %v, want %q", view.notices, c.wantNotice)
			}
			if view.status != c.wantStatus {
				t.Fatalf("status = %q, want %q", view.status, c.wantStatus)
			}
		})
	}
}

// Exporting must not re-render or touch the slots.
func TestExportPresenter_DoesNotRender(t *testing.T) {
	r := &mockRenderer{}
	_, slots, surface, _ := newTestCollage(r)
	slots.Set(model.SlotA, testBitmap(10, 10))
	calls := r.calls

	ex := &mockExporter{res: export.Result{Filename: "c.jpg"}}
	p := NewExportPresenter(ex, surface, &mockExportView{}, nil)
	p.Export(context.Background())
	if r.calls != calls {
		t.Fatalf("export triggered a render")
	}
	if ex.src != export.Source(surface) {
		t.Fatal("exporter should receive the surface")
	}
	if slots.Get(model.SlotA) == nil {
		t.Fatal("export changed the slots")
	}
}

func TestExportPresenter_NilSafe(t *testing.T) {
	var p *ExportPresenter
	p.Export(context.Background())
	NewExportPresenter(nil, nil, nil, nil).Export(context.Background())
}
